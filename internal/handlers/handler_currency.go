package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wealthfolio/networth_backend/internal/core/domain"
	portssvc "github.com/wealthfolio/networth_backend/internal/core/ports/services"
	"github.com/wealthfolio/networth_backend/internal/dto"
)

// currencyHandler exposes the supported currency set and the live rate table.
type currencyHandler struct {
	ratesService portssvc.RatesSvcFacade
}

func newCurrencyHandler(rs portssvc.RatesSvcFacade) *currencyHandler {
	return &currencyHandler{ratesService: rs}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesSvcFacade) {
	h := newCurrencyHandler(ratesService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/rates", h.getRates)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Retrieves the static set of currencies available for display
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(domain.SupportedCurrencies))
}

// getRates godoc
// @Summary Current exchange rates
// @Description Retrieves the USD-relative rate table currently used for conversion
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Security BearerAuth
// @Router /currencies/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RateTableResponse{
		Base:  "USD",
		Rates: h.ratesService.Rates(),
	})
}
