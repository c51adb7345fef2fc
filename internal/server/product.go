package server

import (
	"net/http"

	catalogdomain "github.com/abiramijewels/aurum/internal/catalog/domain"
	"github.com/abiramijewels/aurum/internal/pricing"
	"github.com/gin-gonic/gin"
)

type productPayload struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	SKU           *string  `json:"sku"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Video         *string  `json:"video"`
	Price         float64  `json:"price"`
	Weight        *float64 `json:"weight"`
	Purity        *string  `json:"purity"`
	Stock         *int     `json:"stock"`
	MakingCharges *float64 `json:"making_charges"`
}

type productResponse struct {
	catalogdomain.Product
	State        catalogdomain.State `json:"state"`
	DisplayPrice int64               `json:"display_price"`
}

type archiveRequest struct {
	Confirmation string `json:"confirmation"`
	Password     string `json:"password"`
}

func (s *Server) productResponse(p catalogdomain.Product) productResponse {
	return productResponse{
		Product:      p,
		State:        p.State(),
		DisplayPrice: pricing.Compute(p, s.settingsSvc.RateTable()),
	}
}

func (s *Server) productResponses(items []catalogdomain.Product) []productResponse {
	rates := s.settingsSvc.RateTable()
	out := make([]productResponse, 0, len(items))
	for _, p := range items {
		out = append(out, productResponse{
			Product:      p,
			State:        p.State(),
			DisplayPrice: pricing.Compute(p, rates),
		})
	}
	return out
}

// ListProducts serves the storefront catalog. Archived products are never
// visible here.
func (s *Server) ListProducts(c *gin.Context) {
	items, err := s.catalogSvc.List(c.Request.Context(), catalogdomain.ListRequest{
		Category: catalogdomain.Category(c.Query("category")),
		Query:    c.Query("q"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": s.productResponses(items)})
}

func (s *Server) GetProductByID(c *gin.Context) {
	product, err := s.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if product.State() != catalogdomain.StateActive {
		AbortWithError(c, catalogdomain.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, s.productResponse(*product))
}

func (s *Server) AdminListProducts(c *gin.Context) {
	items, err := s.catalogSvc.List(c.Request.Context(), catalogdomain.ListRequest{
		Category:        catalogdomain.Category(c.Query("category")),
		Query:           c.Query("q"),
		IncludeArchived: true,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": s.productResponses(items)})
}

func (s *Server) AdminGetProductByID(c *gin.Context) {
	product, err := s.catalogSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.productResponse(*product))
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	product, err := s.catalogSvc.Create(c.Request.Context(), catalogdomain.CreateRequest{
		ID:            req.ID,
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      catalogdomain.Category(req.Category),
		Description:   req.Description,
		Images:        req.Images,
		Video:         req.Video,
		Price:         req.Price,
		Weight:        req.Weight,
		Purity:        purityFromPayload(req.Purity),
		Stock:         req.Stock,
		MakingCharges: req.MakingCharges,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s.productResponse(*product))
}

func (s *Server) UpdateProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	product, err := s.catalogSvc.Update(c.Request.Context(), catalogdomain.UpdateRequest{
		ID:            c.Param("id"),
		Name:          req.Name,
		SKU:           req.SKU,
		Category:      catalogdomain.Category(req.Category),
		Description:   req.Description,
		Images:        req.Images,
		Video:         req.Video,
		Price:         req.Price,
		Weight:        req.Weight,
		Purity:        purityFromPayload(req.Purity),
		Stock:         req.Stock,
		MakingCharges: req.MakingCharges,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.productResponse(*product))
}

func (s *Server) ArchiveProduct(c *gin.Context) {
	var req archiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	product, err := s.catalogSvc.Archive(c.Request.Context(), c.Param("id"), catalogdomain.ArchiveConfirmation{
		Phrase:   req.Confirmation,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.productResponse(*product))
}

func (s *Server) RestoreProduct(c *gin.Context) {
	product, err := s.catalogSvc.Restore(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.productResponse(*product))
}

func (s *Server) PurgeProduct(c *gin.Context) {
	if err := s.catalogSvc.Purge(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// QuoteProduct prices an unsaved product payload so the admin form can
// pre-fill the price field. The administrator may still override the result.
func (s *Server) QuoteProduct(c *gin.Context) {
	var req productPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	quote := pricing.Breakdown(catalogdomain.Product{
		Category:      catalogdomain.Category(req.Category),
		Price:         req.Price,
		Weight:        req.Weight,
		Purity:        purityFromPayload(req.Purity),
		MakingCharges: req.MakingCharges,
	}, s.settingsSvc.RateTable())

	c.JSON(http.StatusOK, quote)
}

func purityFromPayload(raw *string) *catalogdomain.Purity {
	if raw == nil || *raw == "" {
		return nil
	}
	purity := catalogdomain.Purity(*raw)
	return &purity
}
