// Package session keeps the slider values of disconnected clients so a
// reconnecting browser can pick up where it left off.
//
// A websocket session that closes saves a Snapshot of every slider it
// hosted into a Store. When the client reconnects with ?resume=<id>
// the server loads the snapshot and restores the values before the
// first render:
//
//	store := session.NewMemoryStore(1000)
//	data, _ := session.Snapshot{ID: id, Values: values}.Encode()
//	_ = store.Save(ctx, id, data, time.Now().Add(5*time.Minute))
//
// Two stores are provided. MemoryStore is the default and bounds the
// number of entries with an LRU. RedisStore shares detached sessions
// between server processes.
package session
