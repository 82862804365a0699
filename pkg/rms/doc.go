// Package rms provides types, interfaces, and helpers for working with the
// Teltonika RMS device-management API.
//
// # Overview
//
// The rms package defines the domain types (Company, Device, Tag, User) and
// the interfaces for resource-oriented clients (CompaniesClient,
// DevicesClient, TagsClient, DeviceCommandsClient). A concrete
// implementation is provided by the rmsclient package, which wires
// configuration, transport, authentication, retries, and logging. Most
// consumers should import rmsclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := rmsclient.NewWithToken(ctx, "", "my-access-token")
//	  if err != nil { log.Fatal(err) }
//
//	  devices, err := cli.Devices().List(ctx, rms.NewQueryParams().WithLimit(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = devices
//	}
//
// # Queries and pagination
//
// Use QueryParams to express list options (limit, offset, q= search, field
// filters). CollectAll fetches every page of a list endpoint; PageIterator
// walks it lazily:
//
//	it := rms.NewPageIterator(ctx, cli.Devices(), rms.NewQueryParams())
//	for it.HasNext() {
//	  device, err := it.Next()
//	  if err != nil { break }
//	  _ = device
//	}
//
// # Errors
//
// Every failed call surfaces a single *Error carrying a Kind from the
// closed taxonomy (authentication, permission, not_found, validation,
// conflict, rate_limit, server, api, connection, timeout), the HTTP status
// where applicable, and field-level validation messages on 422 responses.
// Helpers such as IsNotFound, IsAuthentication, and IsValidation make it
// easy to branch on common cases.
package rms
