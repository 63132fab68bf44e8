package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ReportIDLength is the length of ids used in archive keys.
const ReportIDLength = 12

// GenerateID returns a lowercase alphanumeric id usable in object keys.
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, ReportIDLength)
}
