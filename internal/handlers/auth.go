// auth.go
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
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/storefront-studio/internal/models"
	"github.com/localnerve/storefront-studio/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AuthHandler handles studio account routes
type AuthHandler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// SignupRequest is the body of POST /api/auth/signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountResponse is the account record the studio caches locally
type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func accountResponse(a models.ClientAccount) AccountResponse {
	return AccountResponse{
		ID:        a.AccountID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// Signup handles POST /api/auth/signup
// @Summary Create a studio account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Account"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	account, err := services.Signup(h.DB, req.Name, req.Email, req.Password)
	if err != nil {
		return serviceError(c, h.Logger, err, "signup")
	}
	if h.Logger != nil {
		h.Logger.Info("account created", zap.String("accountId", account.AccountID))
	}
	return c.Status(fiber.StatusCreated).JSON(accountResponse(account))
}

// Login handles POST /api/auth/login
// @Summary Log in to a studio account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} AccountResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	account, err := services.Login(h.DB, req.Email, req.Password)
	if err != nil {
		return serviceError(c, h.Logger, err, "login")
	}
	return c.Status(fiber.StatusOK).JSON(accountResponse(account))
}
