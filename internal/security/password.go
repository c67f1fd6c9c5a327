package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// Alphabets skip characters that are easy to misread when a password is
// relayed over the phone or copied by hand (I, O, l, 0, 1).
const (
	upperAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerAlphabet = "abcdefghijkmnpqrstuvwxyz"
	digitAlphabet = "23456789"

	minTemporaryPasswordLength = 8
)

var errEmptyAlphabet = errors.New("alphabet must not be empty")

// TemporaryPassword returns a cryptographically random password of at least
// minTemporaryPasswordLength characters. The result always contains an upper
// case letter, a lower case letter and a digit, so it satisfies the same
// strength rule enforced at login setup.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}

	password := make([]byte, 0, length)
	for _, alphabet := range []string{upperAlphabet, lowerAlphabet, digitAlphabet} {
		char, err := pickChar(alphabet)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	combined := upperAlphabet + lowerAlphabet + digitAlphabet
	for len(password) < length {
		char, err := pickChar(combined)
		if err != nil {
			return "", err
		}
		password = append(password, char)
	}

	if err := shuffleBytes(password); err != nil {
		return "", err
	}
	return string(password), nil
}

// pickChar draws one character with uniform probability via crypto/rand.
func pickChar(alphabet string) (byte, error) {
	if len(alphabet) == 0 {
		return 0, errEmptyAlphabet
	}
	position, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
	if err != nil {
		return 0, err
	}
	return alphabet[position.Int64()], nil
}

// shuffleBytes applies a Fisher-Yates shuffle so the guaranteed class
// characters do not sit at fixed positions.
func shuffleBytes(value []byte) error {
	for index := len(value) - 1; index > 0; index-- {
		position, err := rand.Int(rand.Reader, big.NewInt(int64(index+1)))
		if err != nil {
			return err
		}
		swap := position.Int64()
		value[index], value[swap] = value[swap], value[index]
	}
	return nil
}
