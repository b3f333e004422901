// Copyright (c) 2026 ToeiRei
// Pwnedcheck - k-anonymity password breach checker
// This source code is licensed under the MIT license found in the LICENSE file.

// package generator produces cryptographically strong random passwords.
// Every random decision routes through crypto/rand; a math/rand source
// anywhere in here would silently turn generated passwords guessable.
package generator

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Alphabet is the full set of symbols a generated password draws from:
// upper and lower case ASCII letters, digits, and the 32 ASCII
// punctuation characters. 94 symbols, none excluded, none weighted.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// DefaultLength is the password length used when the caller does not ask
// for a specific one.
const DefaultLength = 25

// InvalidLengthError reports a non-positive requested length. Lengths
// are never clamped silently.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password length must be at least 1, got %d", e.Length)
}

// Generate returns a password of exactly length characters, each drawn
// independently and uniformly from Alphabet via crypto/rand, followed by
// a second crypto/rand shuffle pass. The shuffle adds nothing on top of
// independent uniform draws, but it is part of the output contract and
// must stay on a secure source.
func Generate(length int) (string, error) {
	if length < 1 {
		return "", &InvalidLengthError{Length: length}
	}

	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(Alphabet))))
		if err != nil {
			return "", fmt.Errorf("drawing random symbol: %w", err)
		}
		password[i] = Alphabet[n.Int64()]
	}

	if err := shuffle(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// shuffle performs a Fisher-Yates shuffle driven by crypto/rand.
func shuffle(p []byte) error {
	for i := len(p) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("shuffling password: %w", err)
		}
		p[i], p[j.Int64()] = p[j.Int64()], p[i]
	}
	return nil
}
