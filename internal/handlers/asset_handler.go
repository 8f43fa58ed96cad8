package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "skillmart/internal/errors"
	"skillmart/internal/models"
	"skillmart/internal/pagination"
	"skillmart/internal/services"
)

// AssetHandler handles asset-related requests.
type AssetHandler struct {
	registryService services.RegistryServicer
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(registryService services.RegistryServicer) *AssetHandler {
	return &AssetHandler{registryService: registryService}
}

// MintAssetRequest represents the request payload for minting an asset
type MintAssetRequest struct {
	Name        string            `json:"name" binding:"required,min=1,max=200"`
	Description string            `json:"description" binding:"required,min=1,max=2000"`
	ContentURI  string            `json:"content_uri" binding:"omitempty,content_uri,max=500"`
	Attributes  map[string]string `json:"attributes" binding:"omitempty,max=32"`
}

// ListAssetRequest represents the request payload for listing an asset for sale.
type ListAssetRequest struct {
	Price int64 `json:"price" binding:"required,gt=0"`
}

// SetActiveRequest represents the request payload for toggling the active flag.
type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// TransferAssetRequest represents the request payload for gifting an asset.
type TransferAssetRequest struct {
	To string `json:"to" binding:"required,principal"`
}

// AssetQuery holds the filter and paging parameters for enumerating assets.
type AssetQuery struct {
	pagination.PageRequest
	Owner   string `form:"owner" binding:"omitempty,principal"`
	Creator string `form:"creator" binding:"omitempty,principal"`
	Active  string `form:"active" binding:"omitempty,oneof=true false"`
	Listed  string `form:"listed" binding:"omitempty,oneof=true false"`
}

// Mint handles the creation of a new asset
// @Summary     Mint an asset
// @Description Mint a new skill NFT owned by the caller
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body MintAssetRequest true "Asset metadata"
// @Success     201 {object} models.Asset "Asset minted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /assets [post]
func (h *AssetHandler) Mint(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req MintAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.registryService.Mint(principal, models.Metadata{
		Name:        req.Name,
		Description: req.Description,
		ContentURI:  req.ContentURI,
		Attributes:  req.Attributes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"asset": asset})
}

// GetAssets enumerates assets with optional filters
// @Summary     List assets
// @Description Enumerate assets filtered by owner, creator, active, or listed, ordered by id
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       owner query string false "Filter by owner principal"
// @Param       creator query string false "Filter by creator principal"
// @Param       active query bool false "Filter by active flag"
// @Param       listed query bool false "Filter by listed flag"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Asset] "Assets"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	var query AssetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.AssetFilter
	if query.Owner != "" {
		owner := models.Principal(query.Owner)
		filter.Owner = &owner
	}
	if query.Creator != "" {
		creator := models.Principal(query.Creator)
		filter.Creator = &creator
	}
	if query.Active != "" {
		active, _ := strconv.ParseBool(query.Active)
		filter.Active = &active
	}
	if query.Listed != "" {
		listed, _ := strconv.ParseBool(query.Listed)
		filter.Listed = &listed
	}

	assets, err := h.registryService.GetAssets(filter, query.PageRequest)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAssetByID retrieves a single asset
// @Summary     Get an asset
// @Description Retrieve a single asset by id
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Asset"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id} [get]
func (h *AssetHandler) GetAssetByID(c *gin.Context) {
	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.registryService.GetAsset(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// List puts an asset up for sale
// @Summary     List an asset for sale
// @Description List an owned, active asset at a positive price
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Param       request body ListAssetRequest true "Listing price"
// @Success     200 {object} models.Asset "Asset listed"
// @Failure     400 {object} ErrorResponse "Invalid price"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset inactive"
// @Router      /assets/{id}/list [post]
func (h *AssetHandler) List(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.registryService.List(principal, id, req.Price)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// Delist withdraws an asset from sale
// @Summary     Delist an asset
// @Description Withdraw an owned asset from sale
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.Asset "Asset delisted"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/delist [post]
func (h *AssetHandler) Delist(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	asset, err := h.registryService.Delist(principal, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// SetActive toggles the asset's freeze switch
// @Summary     Activate or deactivate an asset
// @Description Toggle the active flag; allowed for the creator or the current owner
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Param       request body SetActiveRequest true "Desired active state"
// @Success     200 {object} models.Asset "Asset updated"
// @Failure     403 {object} ErrorResponse "Not creator or owner"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Router      /assets/{id}/active [post]
func (h *AssetHandler) SetActive(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.registryService.SetActive(principal, id, *req.Active)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}

// Purchase buys a listed asset
// @Summary     Purchase an asset
// @Description Buy a listed, active asset; moves funds and ownership atomically
// @Tags        assets
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Success     200 {object} models.PurchaseReceipt "Purchase receipt"
// @Failure     400 {object} ErrorResponse "Self purchase or insufficient funds"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset inactive or not listed"
// @Router      /assets/{id}/purchase [post]
func (h *AssetHandler) Purchase(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	receipt, err := h.registryService.Purchase(principal, id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// Transfer gifts an asset to another principal
// @Summary     Transfer an asset
// @Description Gift an owned, active asset to another principal with no payment
// @Tags        assets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Asset ID"
// @Param       request body TransferAssetRequest true "Recipient principal"
// @Success     200 {object} models.Asset "Asset transferred"
// @Failure     403 {object} ErrorResponse "Not the owner"
// @Failure     404 {object} ErrorResponse "Asset not found"
// @Failure     409 {object} ErrorResponse "Asset inactive"
// @Router      /assets/{id}/transfer [post]
func (h *AssetHandler) Transfer(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id, err := parseAssetID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req TransferAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	asset, err := h.registryService.Transfer(principal, id, models.Principal(req.To))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"asset": asset})
}
