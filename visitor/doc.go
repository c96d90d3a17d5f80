// Package visitor offers flat visitors over container values.
// It iterates slice, array, map and struct values with a callback,
// without descending into nested containers.
package visitor
