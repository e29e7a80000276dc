// catalog.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/storefront-studio/internal/services"
	"github.com/localnerve/storefront-studio/internal/types"
	"github.com/localnerve/storefront-studio/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogHandler allocates ids for collections and products
type CatalogHandler struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

// CollectionRequest is the body of POST /api/collections
type CollectionRequest struct {
	AppID types.FlexString `json:"appId" swaggertype:"string"`
	Name  string           `json:"name"`
}

// ProductRequest is the body of POST /api/products. Price may be a JSON
// number or a numeric string.
type ProductRequest struct {
	CollectionID types.FlexString `json:"collectionId" swaggertype:"string"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        types.FlexString `json:"price" swaggertype:"number"`
	Image        string           `json:"image"`
}

// CreateCollection handles POST /api/collections
// @Summary Create a collection
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body CollectionRequest true "Collection"
// @Success 201 {object} utils.IDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /collections [post]
func (h *CatalogHandler) CreateCollection(c *fiber.Ctx) error {
	var req CollectionRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	coll, err := services.CreateCollection(h.DB, req.AppID.String(), req.Name)
	if err != nil {
		return serviceError(c, h.Logger, err, "createCollection")
	}
	return utils.CreatedResponse(c, coll.CollectionID)
}

// CreateProduct handles POST /api/products
// @Summary Create a product in a collection
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body ProductRequest true "Product"
// @Success 201 {object} utils.IDResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var req ProductRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	price := decimal.Zero
	if req.Price != "" {
		p, err := decimal.NewFromString(req.Price.String())
		if err != nil {
			return utils.BadRequestResponse(c, "price must be a number")
		}
		price = p
	}

	prod, err := services.CreateProduct(h.DB, services.ProductInput{
		CollectionID: req.CollectionID.String(),
		Name:         req.Name,
		Description:  req.Description,
		Price:        price,
		Image:        req.Image,
	})
	if err != nil {
		return serviceError(c, h.Logger, err, "createProduct")
	}
	return utils.CreatedResponse(c, prod.ProductID)
}
