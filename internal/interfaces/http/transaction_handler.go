package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/kiosk-sales/internal/application/analytics"
	"github.com/jhoicas/kiosk-sales/internal/application/dto"
)

// TransactionHandler maneja el listado de transacciones.
type TransactionHandler struct {
	uc *appanalytics.TransactionUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *appanalytics.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// List godoc
// @Summary      Pedidos individuales con detección de duplicados
// @Description  Une los pedidos de las tiendas pedidas, ordena por fecha descendente y marca
//               como sospechoso un pedido seguido de otro de la misma tienda y tipo en 20 s o menos.
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        stores           query  string  false  "Tiendas separadas por coma. Default: todas."
// @Param        start_date       query  string  false  "Inicio (YYYY-MM-DD). Default: hoy."
// @Param        end_date         query  string  false  "Fin (YYYY-MM-DD). Default: hoy."
// @Param        only_suspicious  query  bool    false  "Solo pedidos marcados."
// @Param        limit            query  int     false  "Default 20, max 100."
// @Param        offset           query  int     false  "Default 0."
// @Success      200  {object}  dto.TransactionListDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "limit/offset inválidos",
		})
	}
	onlySuspicious := false
	if v := c.Query("only_suspicious"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "INVALID_PARAMS", Message: "only_suspicious debe ser true o false",
			})
		}
		onlySuspicious = b
	}

	stores, err := resolveStores(c, splitStores(c.Query("stores")))
	if err != nil {
		return writeError(c, err)
	}

	list, err := h.uc.ListTransactions(c.UserContext(), dto.TransactionRequest{
		Stores:         stores,
		StartDate:      c.Query("start_date"),
		EndDate:        c.Query("end_date"),
		OnlySuspicious: onlySuspicious,
		Page:           page,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

func splitStores(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
