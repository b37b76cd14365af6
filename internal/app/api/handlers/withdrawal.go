package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/upmkt/affiliates-api/internal/app/service/withdrawal"
	"github.com/upmkt/affiliates-api/internal/models"
	"github.com/upmkt/affiliates-api/internal/platform/storage"
	"github.com/upmkt/affiliates-api/pkg/response"
	"github.com/upmkt/affiliates-api/pkg/types"
)

// @Summary      Request Withdrawal
// @Description  Claims every available commission of the affiliate into a new pending withdrawal.
// @Tags         Withdrawals
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/withdrawals/request [post]
func ApiRequestWithdrawal(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			PixKey     string           `json:"pix_key"`
			PixKeyType types.PixKeyType `json:"pix_key_type"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.PixKey == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeValidation, "pix_key is required"))
			return
		}
		w, err := svc.Request(c.Request.Context(), currentUserID(c), req.PixKey, req.PixKeyType)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(w))
	}
}

type ListWithdrawalsResponse struct {
	Items []*models.Withdrawal `json:"items"`
	Total int64                `json:"total"`
}

// @Summary      List Own Withdrawals
// @Tags         Withdrawals
// @Produce      json
// @Param        from query int false "Offset"
// @Param        size query int false "Page size"
// @Success      200  {object}  response.APIResponse[ListWithdrawalsResponse]
// @Router       /api/v1/withdrawals [get]
func ApiMyWithdrawals(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, size := pageParams(c)
		items, total, err := svc.ListByProfile(c.Request.Context(), currentUserID(c), from, size)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&ListWithdrawalsResponse{Items: items, Total: total}))
	}
}

// @Summary      List Withdrawals (Admin)
// @Description  Filterable, paginated withdrawal listing joined with affiliate identity.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body withdrawal.ScanRequest true "Filters, search, pagination and sorting"
// @Success      200  {object}  response.APIResponse[withdrawal.ScanResponse]
// @Router       /api/v1/admin/withdrawals/list [post]
func ApiAdminListWithdrawals(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req withdrawal.ScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		res, err := svc.Scan(c.Request.Context(), &req)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

// @Summary      Withdrawal Stats (Admin)
// @Description  Count and amount totals grouped by status.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[[]withdrawal.StatusStats]
// @Router       /api/v1/admin/withdrawals/stats [get]
func ApiWithdrawalStats(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.Stats(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(stats))
	}
}

// @Summary      Approve Withdrawal (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Withdrawal ID"
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/admin/withdrawals/{id}/approve [post]
func ApiApproveWithdrawal(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.Approve(c.Request.Context(), c.Param("id"), currentUserID(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(w))
	}
}

// @Summary      Reject Withdrawal (Admin)
// @Description  Rejects a pending withdrawal. A non-empty reason is mandatory.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Withdrawal ID"
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/admin/withdrawals/{id}/reject [post]
func ApiRejectWithdrawal(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		w, err := svc.Reject(c.Request.Context(), c.Param("id"), currentUserID(c), req.Reason)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(w))
	}
}

// @Summary      Pay Withdrawal (Admin)
// @Description  Uploads one or more payment proofs and marks the withdrawal as paid in the same request.
// @Tags         Admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "Withdrawal ID"
// @Param        proofs formData file true "Payment proof files"
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/admin/withdrawals/{id}/pay [post]
func ApiPayWithdrawal(svc *withdrawal.Service, store storage.Driver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		files := form.File["proofs"]
		if len(files) == 0 {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeValidation, withdrawal.ErrNoPaymentProof.Error()))
			return
		}

		// Resolve the owner first so proofs land under the affiliate's prefix.
		w, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			fail(c, err)
			return
		}

		urls := make([]string, 0, len(files))
		for _, fh := range files {
			f, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
				return
			}
			path := storage.ObjectPath(storage.BucketPaymentProofs, w.ProfileID, id, fh.Filename)
			_, url, err := store.Upload(c.Request.Context(), f, path)
			f.Close()
			if err != nil {
				c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
				return
			}
			urls = append(urls, url)
		}

		paid, err := svc.Pay(c.Request.Context(), id, currentUserID(c), urls)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(paid))
	}
}

// @Summary      Revert Withdrawal Approval (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Withdrawal ID"
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/admin/withdrawals/{id}/revert_approval [post]
func ApiRevertApproval(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.RevertApproval(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(w))
	}
}

// @Summary      Revert Withdrawal Payment (Admin)
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Withdrawal ID"
// @Success      200  {object}  response.APIResponse[models.Withdrawal]
// @Router       /api/v1/admin/withdrawals/{id}/revert_payment [post]
func ApiRevertPayment(svc *withdrawal.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := svc.RevertPayment(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(w))
	}
}

// WithdrawalStatuses exposes the legal transition targets per status so the
// admin UI can render only the actions the backend will accept.
type WithdrawalTransitions map[types.WithdrawalStatus][]types.WithdrawalStatus

// @Summary      Withdrawal Transition Table (Admin)
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  response.APIResponse[WithdrawalTransitions]
// @Router       /api/v1/admin/withdrawals/transitions [get]
func ApiWithdrawalTransitions() gin.HandlerFunc {
	table := WithdrawalTransitions{}
	for _, from := range []types.WithdrawalStatus{
		types.WithdrawalStatusPending,
		types.WithdrawalStatusApproved,
		types.WithdrawalStatusPaid,
		types.WithdrawalStatusRejected,
	} {
		table[from] = lo.Filter([]types.WithdrawalStatus{
			types.WithdrawalStatusPending,
			types.WithdrawalStatusApproved,
			types.WithdrawalStatusPaid,
			types.WithdrawalStatusRejected,
		}, func(to types.WithdrawalStatus, _ int) bool {
			return withdrawal.CanTransition(from, to)
		})
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.OKT(table))
	}
}

func RegisterWithdrawalRoutes(r gin.IRouter, svc *withdrawal.Service) {
	r.POST("/withdrawals/request", ApiRequestWithdrawal(svc))
	r.GET("/withdrawals", ApiMyWithdrawals(svc))
}

func RegisterAdminWithdrawalRoutes(r gin.IRouter, svc *withdrawal.Service, store storage.Driver) {
	r.POST("/withdrawals/list", ApiAdminListWithdrawals(svc))
	r.GET("/withdrawals/stats", ApiWithdrawalStats(svc))
	r.GET("/withdrawals/transitions", ApiWithdrawalTransitions())
	r.POST("/withdrawals/:id/approve", ApiApproveWithdrawal(svc))
	r.POST("/withdrawals/:id/reject", ApiRejectWithdrawal(svc))
	r.POST("/withdrawals/:id/pay", ApiPayWithdrawal(svc, store))
	r.POST("/withdrawals/:id/revert_approval", ApiRevertApproval(svc))
	r.POST("/withdrawals/:id/revert_payment", ApiRevertPayment(svc))
}
