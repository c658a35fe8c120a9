// Package services carries the cross-cutting pieces the resolver and daemon
// both depend on: context plumbing and error classification.
//
// The context carriers stamp series identifiers and request IDs onto a
// context.Context so log lines and API responses can be correlated across
// layers. On the error side, sentinel markers paired with Wrap fold
// component and operation names into failure messages, and HTTPStatus maps
// any wrapped error to the status code the API should answer with (bad
// request vs not found vs internal).
package services
