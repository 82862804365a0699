// Package rmsclient provides the primary entry point for constructing a
// Teltonika RMS API client that implements the rms.Client interface.
//
// It layers configuration, HTTP transport, bearer authentication, retry, and
// error classification on top of the resource interfaces and types defined in
// the rms package. Most applications should import rmsclient to build a
// client, then use the returned rms.Client to access resource-specific
// clients, for example Devices(), Companies(), Tags().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/wifinity-io/rms-client/pkg/rms"
//	  "github.com/wifinity-io/rms-client/pkg/rmsclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: a personal access token against the public endpoint.
//	  cli, err := rmsclient.NewWithToken("eyJ0eXAiOi...")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with a full config:
//	  cli, err = rmsclient.New(&rms.Config{
//	    BaseURL:     "https://rms.teltonika-networks.com/api",
//	    AccessToken: "eyJ0eXAiOi...",
//	    Debug:       true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the rms.Client interface
//	  devices, err := cli.Devices().List(ctx, rms.NewQueryParams().WithFilter("status", "online"))
//	  if err != nil { log.Fatal(err) }
//	  _ = devices
//	}
//
// # Retries
//
// Network failures and 5xx responses are retried with exponential backoff up
// to Config.RetryMax attempts. Client errors, including 429, are never
// retried; rate-limit errors carry the backend's Retry-After hint instead.
// Set Config.RetryDisabled for exactly one attempt per call.
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewFromEnv that wrap New with the appropriate configuration.
package rmsclient
