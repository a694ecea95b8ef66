// Package storage provides the default in-memory implementations of the
// engine's store interfaces. Entities are lost when the server restarts;
// the redis and mongodb subpackages provide durable alternatives.
package storage
