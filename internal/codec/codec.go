// Package codec serializes domain records to and from the persisted text
// format. Every stored blob is JSON. Decoding tolerates absent fields (each
// defaults to its zero value) and fails only on malformed text; callers own
// the recovery policy for that failure, the codec never decides it.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopfront-app/shopfront/internal/models"
)

// ErrCorruptFormat reports a stored blob whose text is not well-formed.
var ErrCorruptFormat = errors.New("corrupt record format")

// EncodeUser renders a single account record.
func EncodeUser(u *models.User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("failed to encode user: %w", err)
	}
	return string(b), nil
}

// DecodeUser parses a single account record.
func DecodeUser(text string) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal([]byte(text), &u); err != nil {
		return nil, fmt.Errorf("%w: user: %v", ErrCorruptFormat, err)
	}
	return &u, nil
}

// EncodeDirectory renders the whole email-to-account mapping.
func EncodeDirectory(dir map[string]*models.User) (string, error) {
	b, err := json.Marshal(dir)
	if err != nil {
		return "", fmt.Errorf("failed to encode directory: %w", err)
	}
	return string(b), nil
}

// DecodeDirectory parses the whole email-to-account mapping. An empty or
// "null" document decodes to an empty map, not an error.
func DecodeDirectory(text string) (map[string]*models.User, error) {
	var dir map[string]*models.User
	if err := json.Unmarshal([]byte(text), &dir); err != nil {
		return nil, fmt.Errorf("%w: directory: %v", ErrCorruptFormat, err)
	}
	if dir == nil {
		dir = make(map[string]*models.User)
	}
	return dir, nil
}

// EncodeCart renders a cart sequence.
func EncodeCart(items []models.CartItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(b), nil
}

// DecodeCart parses a cart sequence.
func DecodeCart(text string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: cart: %v", ErrCorruptFormat, err)
	}
	return items, nil
}
