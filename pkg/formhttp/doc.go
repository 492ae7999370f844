// Package formhttp exposes form validation and store-bound field values over
// HTTP with a chi router.
//
// POST /validate takes {"rules": {field: rules}, "values": {...}} and answers
// {"valid": bool, "errors": {field: [messages]}} with messages in rule
// declaration order. An unknown rule answers 422. When the request names a
// form and the handler has a store, the messages are also recorded with
// setFieldErrors so GET /forms/{form}/valid reflects them.
package formhttp
