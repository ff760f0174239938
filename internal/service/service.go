// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated input from the handler, calls the repository, and turns
// storage outcomes into application errors.
package service
