package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/multislider/internal/errors"
	"github.com/vango-dev/multislider/pkg/geometry"
	"github.com/vango-dev/multislider/pkg/server"
)

func resolveCmd() *cobra.Command {
	var (
		left, width, pageX float64
		reversed           bool
		target             string
		layout             string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Convert a pointer position into a progress value",
		Long: `Convert a pointer position over a track into the progress percentage a
slider would report.

Examples:
  multislider resolve --left=154 --width=876 --page-x=933.64
  multislider resolve --left=0 --width=200 --page-x=50 --reversed
  multislider resolve --left=0 --width=200 --page-x=50 --target=icon --layout=flat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := parseLayout(layout)
			if err != nil {
				return err
			}
			role := geometry.ParseRole(target)
			if role == geometry.RoleNone {
				return errors.New("E401").WithDetail(fmt.Sprintf("unknown target role %q", target))
			}

			in := server.Inbound{
				PageX: pageX,
				Path:  pathTo(l, role, left, width),
			}
			p, ok := geometry.Resolve(in.Event(geometry.PointerMove), l, reversed)
			if !ok {
				return errors.New("E202").WithDetail(fmt.Sprintf("track width %v", width))
			}
			fmt.Fprintln(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().Float64Var(&left, "left", 0, "Left edge of the track in page pixels")
	cmd.Flags().Float64Var(&width, "width", 0, "Track width in pixels")
	cmd.Flags().Float64Var(&pageX, "page-x", 0, "Pointer x position in page pixels")
	cmd.Flags().BoolVar(&reversed, "reversed", false, "Resolve on a reversed axis")
	cmd.Flags().StringVar(&target, "target", "track", "Element under the pointer: track, fill, handle, icon or zone")
	cmd.Flags().StringVar(&layout, "layout", "nested", "Tree layout: nested (multi slider) or flat (legacy slider)")

	return cmd
}

func parseLayout(name string) (geometry.Layout, error) {
	switch name {
	case "nested":
		return geometry.NestedLayout, nil
	case "flat":
		return geometry.FlatLayout, nil
	}
	return nil, errors.New("E401").WithDetail(fmt.Sprintf("unknown layout %q", name))
}

// pathTo builds the element path from the track to an element of the
// given role, following the layout's nesting.
func pathTo(l geometry.Layout, role geometry.Role, left, width float64) []server.PathElement {
	path := []server.PathElement{{Role: geometry.RoleTrack.String(), Left: left, Width: width}}
	nested := l[geometry.RoleHandle] > l[geometry.RoleFill]

	var roles []geometry.Role
	switch role {
	case geometry.RoleFill, geometry.RoleZone:
		roles = []geometry.Role{role}
	case geometry.RoleHandle:
		roles = []geometry.Role{geometry.RoleHandle}
	case geometry.RoleIcon:
		roles = []geometry.Role{geometry.RoleHandle, geometry.RoleIcon}
	}
	if nested && (role == geometry.RoleHandle || role == geometry.RoleIcon) {
		roles = append([]geometry.Role{geometry.RoleFill}, roles...)
	}
	for _, r := range roles {
		path = append(path, server.PathElement{Role: r.String()})
	}
	return path
}
