// common.go
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

package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/storefront-studio/internal/services"
	"github.com/localnerve/storefront-studio/internal/utils"
	"go.uber.org/zap"
)

// parseBody decodes a JSON request body into out. It reports whether the
// handler should continue; on false the 400 has been written.
func parseBody(c *fiber.Ctx, out any) (bool, error) {
	if len(c.Body()) == 0 {
		return false, utils.BadRequestResponse(c, "Request body is required")
	}
	if err := c.BodyParser(out); err != nil {
		return false, utils.BadRequestResponse(c, "Malformed JSON body")
	}
	return true, nil
}

// serviceError maps service sentinels onto the error envelope. Anything
// unrecognized is a logged 500.
func serviceError(c *fiber.Ctx, log *zap.Logger, err error, op string) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), services.ErrInvalidInput.Error()+": ")
		return utils.ErrorResponse(c, msg, fiber.StatusBadRequest, op+".validation")
	case errors.Is(err, services.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, services.ErrConflict):
		return utils.ErrorResponse(c, "Email already registered", fiber.StatusConflict, op+".conflict")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.ErrorResponse(c, "Invalid credentials", fiber.StatusUnauthorized, op+".credentials")
	}
	if log != nil {
		log.Error("request failed", zap.String("op", op), zap.Error(err))
	}
	return utils.ErrorResponse(c, "Internal server error", fiber.StatusInternalServerError, op)
}
