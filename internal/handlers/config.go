// config.go
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
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/storefront-studio/internal/services"
	"github.com/localnerve/storefront-studio/internal/types"
	"github.com/localnerve/storefront-studio/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConfigHandler handles storefront config routes
type ConfigHandler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// PublishRequest is the body of POST /api/config
type PublishRequest struct {
	UserID types.FlexString `json:"userId" swaggertype:"string"`
	Config json.RawMessage  `json:"config" swaggertype:"object"`
}

// GetConfig handles GET /api/config/:userId
// @Summary Get a stored storefront config
// @Description Returns the document last published for the user, byte for byte
// @Tags Config
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /config/{userId} [get]
func (h *ConfigHandler) GetConfig(c *fiber.Ctx) error {
	userID := c.Params("userId")

	doc, err := services.GetConfig(h.DB, userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return utils.NotFoundResponse(c, "Config not found")
		}
		return serviceError(c, h.Logger, err, "getConfig")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(doc)
}

// PublishConfig handles POST /api/config
// @Summary Publish a storefront config
// @Description Upserts the user's document. The last write wins; newVersion counts publishes.
// @Tags Config
// @Accept json
// @Produce json
// @Param body body PublishRequest true "User and document"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /config [post]
func (h *ConfigHandler) PublishConfig(c *fiber.Ctx) error {
	var req PublishRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	version, err := services.UpsertConfig(h.DB, req.UserID.String(), req.Config)
	if err != nil {
		return serviceError(c, h.Logger, err, "publishConfig")
	}

	if h.Logger != nil {
		h.Logger.Info("config published", zap.String("userId", req.UserID.String()), zap.Uint64("version", version))
	}
	return utils.MutationSuccessResponse(c, version)
}
