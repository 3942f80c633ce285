package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
	"github.com/ItsCoreyE/creatorsite/pkg/httpclient"
)

// RobloxDispatcher is the outbound HTTP dependency for asset lookups.
type RobloxDispatcher interface {
	Do(method, url string, header http.Header, body []byte, opts httpclient.Options) (*httpclient.Response, error)
}

// RobloxHandler proxies asset thumbnail lookups so the frontend never talks
// to Roblox directly (their endpoints have no CORS headers).
type RobloxHandler struct {
	dispatcher RobloxDispatcher
	logger     *slog.Logger
}

// NewRobloxHandler creates a new RobloxHandler
func NewRobloxHandler(dispatcher RobloxDispatcher, logger *slog.Logger) *RobloxHandler {
	return &RobloxHandler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RobloxAssetResponse represents a resolved asset lookup. Success false with
// an empty thumbnail is the degraded response when Roblox is unreachable.
type RobloxAssetResponse struct {
	AssetID      string `json:"assetId"`
	Name         string `json:"name,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Success      bool   `json:"success"`
}

type thumbnailAPIResponse struct {
	Data []struct {
		TargetID int64  `json:"targetId"`
		State    string `json:"state"`
		ImageURL string `json:"imageUrl"`
	} `json:"data"`
}

type assetDetailsResponse struct {
	Name string `json:"Name"`
}

// assetLookupOptions keep thumbnail resolution snappy: one retry, and a
// tighter per-attempt deadline than webhook delivery gets.
func assetLookupOptions() httpclient.Options {
	return httpclient.Options{
		Timeout:    5 * time.Second,
		Retries:    1,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Lookup resolves the thumbnail and display name for an asset ID. Roblox
// being down degrades to a success=false response rather than an error so
// the milestone UI can still render without artwork.
func (h *RobloxHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	assetID := r.URL.Query().Get("assetId")
	if assetID == "" {
		pkghttp.WriteBadRequest(w, "assetId query parameter is required")
		return
	}
	if _, err := strconv.ParseInt(assetID, 10, 64); err != nil {
		pkghttp.WriteBadRequest(w, "assetId must be numeric")
		return
	}

	resp := RobloxAssetResponse{AssetID: assetID}

	if url := h.fetchThumbnail(assetID); url != "" {
		resp.ThumbnailURL = url
		resp.Success = true
	}
	resp.Name = h.fetchName(assetID)

	pkghttp.WriteJSON(w, http.StatusOK, resp)
}

func (h *RobloxHandler) fetchThumbnail(assetID string) string {
	url := fmt.Sprintf(
		"https://thumbnails.roblox.com/v1/assets?assetIds=%s&size=420x420&format=Png&isCircular=false",
		assetID)

	resp, err := h.dispatcher.Do(http.MethodGet, url, nil, nil, assetLookupOptions())
	if err != nil || !resp.OK() {
		h.logger.Warn("thumbnail lookup failed",
			slog.String("asset_id", assetID),
			slog.Any("error", err))
		return ""
	}

	var parsed thumbnailAPIResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		h.logger.Warn("thumbnail response malformed", slog.String("asset_id", assetID))
		return ""
	}
	if len(parsed.Data) == 0 || parsed.Data[0].State != "Completed" {
		return ""
	}
	return parsed.Data[0].ImageURL
}

func (h *RobloxHandler) fetchName(assetID string) string {
	url := fmt.Sprintf("https://economy.roblox.com/v2/assets/%s/details", assetID)

	resp, err := h.dispatcher.Do(http.MethodGet, url, nil, nil, assetLookupOptions())
	if err != nil || !resp.OK() {
		return ""
	}

	var parsed assetDetailsResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return ""
	}
	return parsed.Name
}
