// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from handlers, applies defaults and domain rules (password hashing,
// session tokens, list limits), and calls repository methods to interact
// with the data.
package service
