// Package strutil contains functions to help handling strings.
package strutil

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const charset string = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// SplitWithSpaces splits a space-delimited value, returning an empty slice
// for blank input.
func SplitWithSpaces(s string) []string {
	slice := []string{}
	if strings.ReplaceAll(strings.Trim(s, " "), " ", "") != "" {
		slice = strings.Split(s, " ")
	}

	return slice
}

// Random generates an unguessable alphanumeric string of the given length.
func Random(length int) (string, error) {
	result := strings.Builder{}
	charsetLength := big.NewInt(int64(len(charset)))

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, charsetLength)
		if err != nil {
			return "", err
		}
		result.WriteByte(charset[n.Int64()])
	}

	return result.String(), nil
}
