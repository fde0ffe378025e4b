package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

// InventoryResponse is the shop's current day and stock
type InventoryResponse struct {
	Day   int           `json:"day"`
	Items []domain.Item `json:"items"`
}

type AddItemRequest struct {
	Name    string `json:"name" validate:"required,max=200,itemname,excludesall=\x00\n\r\t"`
	SellIn  int    `json:"sell_in" validate:"min=-100000,max=100000"`
	Quality int    `json:"quality" validate:"min=0,max=80"`
}

type AddItemResponse struct {
	Message string      `json:"message"`
	Item    domain.Item `json:"item"`
}

// ClassifyResponse describes how the daily update treats a name
type ClassifyResponse struct {
	Name string `json:"name"`
	domain.Classification
}

// HandleGetInventory returns the current stock
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		respondJSON(w, http.StatusOK, InventoryResponse{
			Day:   svc.Day(ctx),
			Items: svc.Items(ctx),
		})
	}
}

// HandleAddItem stocks a new item
func HandleAddItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add item"); err != nil {
			return
		}

		item := domain.Item{Name: req.Name, SellIn: req.SellIn, Quality: req.Quality}
		if err := svc.AddItem(r.Context(), item); err != nil {
			respondServiceError(w, r, "Add item", err)
			return
		}

		respondJSON(w, http.StatusCreated, AddItemResponse{Message: MsgItemAdded, Item: item})
	}
}

// HandleAdvanceDay runs one day's update and returns the resulting report
func HandleAdvanceDay(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.AdvanceDay(r.Context())
		if err != nil {
			respondServiceError(w, r, "Advance day", err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleGetHistory returns the report recorded for the {day} URL parameter
func HandleGetHistory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := strconv.Atoi(chi.URLParam(r, "day"))
		if err != nil || day < 0 {
			logger.FromContext(r.Context()).Warn(LogMsgRequestInvalid, "action", "Get history", "day", chi.URLParam(r, "day"))
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDay)
			return
		}

		report, err := svc.History(r.Context(), day)
		if err != nil {
			respondServiceError(w, r, "Get history", err)
			return
		}
		respondJSON(w, http.StatusOK, report)
	}
}

// HandleClassify reports the category of the name query parameter
func HandleClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, ok := GetQueryParam(r, w, "name")
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, ClassifyResponse{
			Name:           name,
			Classification: shop.Classify(name),
		})
	}
}
