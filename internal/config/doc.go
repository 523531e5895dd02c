// Package config provides configuration parsing for the multislider demo
// server.
//
// The configuration is stored in multislider.yaml. This package handles
// loading, defaulting and validating it.
//
// # Configuration File Structure
//
//	server:
//	  host: localhost
//	  port: 3000
//	  shutdownTimeout: 5s
//	log:
//	  level: info
//	  format: text
//	  file: logs/multislider.log
//	metrics:
//	  enabled: true
//	  path: /metrics
//	tracing:
//	  enabled: false
//	icons:
//	  dir: ./icons
//	  # or
//	  s3:
//	    bucket: my-icons
//	    region: eu-west-1
//	demo:
//	  sliders:
//	    - id: volume
//	      kind: multi
//	      props:
//	        roundedCorners: true
//	        sliders:
//	          - {color: "#00BDAF", progress: 17, dot: true}
//
// Slider props use the same keys as the widget props and are decoded by
// the slider package.
package config
