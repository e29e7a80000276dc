// response.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the standard error envelope. "error" carries the text
// the studio shows to the user.
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":    status,
		"message":   message,
		"error":     message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusNotFound, "notFound")
}

// BadRequestResponse sends a 400 for an unreadable or invalid body
func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, message, fiber.StatusBadRequest, "validation")
}

// MutationSuccessResponse sends a success response for a config publish
func MutationSuccessResponse(c *fiber.Ctx, newVersion uint64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Success",
		"ok":         true,
		"newVersion": newVersion,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// CreatedResponse sends 201 with the new record's id
func CreatedResponse(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(IDResponseStruct{ID: id})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Error     string `json:"error"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// SuccessResponseStruct defines the schema for publish success responses
type SuccessResponseStruct struct {
	Message    string `json:"message"`
	Ok         bool   `json:"ok"`
	NewVersion uint64 `json:"newVersion"`
	Timestamp  string `json:"timestamp"`
}

// IDResponseStruct defines the schema for create responses
type IDResponseStruct struct {
	ID string `json:"id"`
}
