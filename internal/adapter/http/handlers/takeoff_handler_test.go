package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"contractor_takeoff/internal/adapter/http/handlers/mocks"
	"contractor_takeoff/internal/domain/entities"
	"contractor_takeoff/internal/usecase"
	"contractor_takeoff/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTakeoffRouter(h *TakeoffHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/takeoffs/draft", h.Draft)
	r.POST("/v1/takeoffs/preview", h.Preview)
	r.POST("/v1/takeoffs", h.Create)
	r.PUT("/v1/takeoffs/:id", h.Update)
	r.GET("/v1/takeoffs/:id", h.GetByID)
	r.DELETE("/v1/takeoffs/:id", h.Delete)
	r.PATCH("/v1/takeoffs/:id/hardware/:item_id", h.UpdateHardwareOverride)
	r.GET("/v1/customers/:customer_id/takeoffs", h.ListByCustomer)
	return r
}

const takeoffBody = `{
	"customer_id": "c-1",
	"trade": "siding",
	"elevations": [{"elevation_id": "front", "panel_length": "10", "panel_width": 8}],
	"selection": {"manufacturer_id": "mfr-1", "product_line_id": "pl-1", "price_per_unit": 12.5, "unit": "sqft"}
}`

func TestTakeoffHandler_Draft(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		w := perform(r, http.MethodPost, "/v1/takeoffs/draft", `{"trade":"siding"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Draft(gomock.Any(), "roofing", "c-1", "").Return(entities.Takeoff{}, entities.ErrUnknownTrade)

		w := perform(r, http.MethodPost, "/v1/takeoffs/draft", `{"trade":"roofing","customer_id":"c-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Code != "UNKNOWN_TRADE" {
			t.Fatalf("expected UNKNOWN_TRADE, got %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Draft(gomock.Any(), "siding", "c-1", "p-1").Return(entities.Takeoff{
			CustomerID: "c-1",
			Trade:      entities.TradeSiding,
			Elevations: []entities.ElevationMeasurement{{ElevationID: "front"}, {ElevationID: "rear"}},
		}, nil)

		w := perform(r, http.MethodPost, "/v1/takeoffs/draft", `{"trade":"siding","customer_id":"c-1","project_id":"p-1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if els, _ := body["elevations"].([]any); len(els) != 2 {
			t.Fatalf("expected 2 elevations, got %v", body["elevations"])
		}
		if _, ok := body["created_at"]; ok {
			t.Fatalf("draft must not carry timestamps: %v", body)
		}
	})
}

func TestTakeoffHandler_Preview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		w := perform(r, http.MethodPost, "/v1/takeoffs/preview", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lenient numbers reach the use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Preview(gomock.Any(), gomock.AssignableToTypeOf(usecase.TakeoffCommand{})).DoAndReturn(
			func(_ context.Context, cmd usecase.TakeoffCommand) (entities.Takeoff, error) {
				if cmd.ID != "" || len(cmd.Elevations) != 1 || cmd.Elevations[0].PanelLength != 10 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Takeoff{Trade: entities.TradeSiding, GrandTotal: 1445}, nil
			},
		)

		w := perform(r, http.MethodPost, "/v1/takeoffs/preview", takeoffBody)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid elevations", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(entities.Takeoff{}, usecase.ErrInvalidElevations)

		w := perform(r, http.MethodPost, "/v1/takeoffs/preview", takeoffBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestTakeoffHandler_Save(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create product not selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Takeoff{}, usecase.ErrProductNotSelected)

		w := perform(r, http.MethodPost, "/v1/takeoffs", `{"customer_id":"c-1","trade":"siding"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.TakeoffCommand) (entities.Takeoff, error) {
				if cmd.ID != "" || cmd.Selection.PricePerUnit != 12.5 {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Takeoff{ID: "tk-1", CreatedAt: now, UpdatedAt: now}, nil
			},
		)

		w := perform(r, http.MethodPost, "/v1/takeoffs", takeoffBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update passes path id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, cmd usecase.TakeoffCommand) (entities.Takeoff, error) {
				if cmd.ID != "tk-1" {
					t.Fatalf("expected path id, got %q", cmd.ID)
				}
				return entities.Takeoff{}, usecase.ErrTakeoffNotFound
			},
		)

		w := perform(r, http.MethodPut, "/v1/takeoffs/tk-1", takeoffBody)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Takeoff{}, errors.New("db"))

		w := perform(r, http.MethodPost, "/v1/takeoffs", takeoffBody)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestTakeoffHandler_GetListDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "tk-1").Return(entities.Takeoff{ID: "tk-1"}, nil)

		w := perform(r, http.MethodGet, "/v1/takeoffs/tk-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("list success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().ListByCustomerID(gomock.Any(), "c-1").Return([]entities.Takeoff{{ID: "a"}, {ID: "b"}}, nil)

		w := perform(r, http.MethodGet, "/v1/customers/c-1/takeoffs", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 takeoffs, got %d", len(body))
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "tk-1").Return(usecase.ErrTakeoffNotFound)

		w := perform(r, http.MethodDelete, "/v1/takeoffs/tk-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().Delete(gomock.Any(), "tk-1").Return(nil)

		w := perform(r, http.MethodDelete, "/v1/takeoffs/tk-1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestTakeoffHandler_UpdateHardwareOverride(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		w := perform(r, http.MethodPatch, "/v1/takeoffs/tk-1/hardware/hw-1", `{"value":3}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("set quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().UpdateHardwareOverride(gomock.Any(), "tk-1", "hw-1", entities.OverrideQuantity, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, _ entities.OverrideField, v *float64) (entities.Takeoff, error) {
				if v == nil || *v != 3 {
					t.Fatalf("expected value 3, got %v", v)
				}
				return entities.Takeoff{ID: "tk-1"}, nil
			},
		)

		w := perform(r, http.MethodPatch, "/v1/takeoffs/tk-1/hardware/hw-1", `{"field":"Quantity","value":3}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("null clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().UpdateHardwareOverride(gomock.Any(), "tk-1", "hw-1", entities.OverridePrice, gomock.Nil()).Return(entities.Takeoff{ID: "tk-1"}, nil)

		w := perform(r, http.MethodPatch, "/v1/takeoffs/tk-1/hardware/hw-1", `{"field":"price","value":null}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid field and missing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITakeoffUseCase(ctrl)
		r := newTakeoffRouter(NewTakeoffHandler(uc))

		uc.EXPECT().UpdateHardwareOverride(gomock.Any(), "tk-1", "hw-1", entities.OverrideField("discount"), gomock.Any()).Return(entities.Takeoff{}, usecase.ErrInvalidOverrideField)
		uc.EXPECT().UpdateHardwareOverride(gomock.Any(), "tk-1", "hw-9", entities.OverridePrice, gomock.Any()).Return(entities.Takeoff{}, usecase.ErrHardwareItemNotFound)

		if w := perform(r, http.MethodPatch, "/v1/takeoffs/tk-1/hardware/hw-1", `{"field":"discount","value":1}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if w := perform(r, http.MethodPatch, "/v1/takeoffs/tk-1/hardware/hw-9", `{"field":"price","value":1}`); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestMapTakeoffError(t *testing.T) {
	cases := map[error]int{
		usecase.ErrInvalidTakeoffID:     http.StatusBadRequest,
		usecase.ErrInvalidCustomerID:    http.StatusBadRequest,
		entities.ErrInvalidSelection:    http.StatusBadRequest,
		usecase.ErrProductNotSelected:   http.StatusUnprocessableEntity,
		usecase.ErrTakeoffNotFound:      http.StatusNotFound,
		usecase.ErrCatalogNotConfigured: http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got := mapTakeoffError(err).HTTPStatus; got != want {
			t.Fatalf("%v: expected %d, got %d", err, want, got)
		}
	}
}
