// Package formapi exposes form validation over HTTP.
//
// Routes:
//
//	POST /v1/forms/validate   body: JSON form definition (see dynform.Model)
//	GET  /healthz             liveness probe
//
// A valid form yields 200, an invalid one 422; both carry a dynform.Result
// body. Malformed definitions and validator configuration errors yield 400,
// validation runs that exceed the timeout 504.
package formapi
