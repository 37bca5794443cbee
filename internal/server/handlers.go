package server

import (
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/equity"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/model"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := sonic.Marshal(v)
	if err != nil {
		s.logger.Errorf("%s: can't encode response", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		s.logger.Warnf("%s: can't write response", err)
	}
}

func (s *Server) readJSON(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) equityBRL() (float64, float64) {
	rate := s.rates.Current()
	snap := s.store.Snapshot()
	return equity.Compute(snap.Contributions, snap.Trades, snap.ExtraIncomes, rate), rate
}

func (s *Server) handleEquity(w http.ResponseWriter, _ *http.Request) {
	total, rate := s.equityBRL()
	s.writeJSON(w, http.StatusOK, map[string]float64{
		"equityBRL":    total,
		"exchangeRate": rate,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Refresh(r.Context()); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	total, rate := s.equityBRL()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"equityBRL":     total,
		"exchangeRate":  rate,
		"trades":        snap.Trades,
		"contributions": snap.Contributions,
		"extraIncomes":  snap.ExtraIncomes,
		"assets":        snap.Assets,
		"diaryEntries":  snap.DiaryEntries,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	total, rate := s.equityBRL()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"trades":        snap.Trades,
		"extraIncomes":  snap.ExtraIncomes,
		"contributions": snap.Contributions,
		"equityBRL":     total,
		"exchangeRate":  rate,
	})
}

func (s *Server) handleTreasury(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	_, rate := s.equityBRL()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"brokers":       snap.Brokers,
		"contributions": snap.Contributions,
		"trades":        snap.Trades,
		"extraIncomes":  snap.ExtraIncomes,
		"exchangeRate":  rate,
	})
}

func (s *Server) handleDiaryView(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"entries": s.store.Snapshot().DiaryEntries,
	})
}

func (s *Server) handleMacroView(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"instruments": model.MacroCatalog(),
	})
}

// handleValuationView serves the fundamental valuation board: the active
// stock-library subset of the asset catalog plus the current equity base.
func (s *Server) handleValuationView(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	stocks := make([]model.Asset, 0, len(snap.Assets))
	for _, a := range snap.Assets {
		if a.Category == model.StocksREIT && a.Status != model.Inactive {
			stocks = append(stocks, a)
		}
	}
	total, rate := s.equityBRL()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"assets":       stocks,
		"equityBRL":    total,
		"exchangeRate": rate,
	})
}

func (s *Server) handleAssetsView(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"assets":        snap.Assets,
		"savedAnalyses": snap.SavedAnalyses,
	})
}

func (s *Server) handleAnalysesView(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"savedAnalyses": s.store.Snapshot().SavedAnalyses,
	})
}

func (s *Server) handleSaveTrade(w http.ResponseWriter, r *http.Request) {
	var t model.Trade
	if err := s.readJSON(r, &t); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.SaveTrade(r.Context(), t); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleArchiveTrade(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.ArchiveTrade(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

func (s *Server) handleDeleteTrade(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteTrade(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveAsset(w http.ResponseWriter, r *http.Request) {
	var a model.Asset
	if err := s.readJSON(r, &a); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.SaveAsset(r.Context(), a); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleAssetStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status model.AssetStatus `json:"status"`
	}
	if err := s.readJSON(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.UpdateAssetStatus(r.Context(), chi.URLParam(r, "id"), body.Status); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteAsset(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddBroker(w http.ResponseWriter, r *http.Request) {
	var b model.Broker
	if err := s.readJSON(r, &b); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.AddBroker(r.Context(), b); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleDeleteBroker(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteBroker(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveContribution(w http.ResponseWriter, r *http.Request) {
	var c model.Contribution
	if err := s.readJSON(r, &c); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.SaveContribution(r.Context(), c); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleDeleteContribution(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteContribution(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddIncome(w http.ResponseWriter, r *http.Request) {
	var i model.ExtraIncome
	if err := s.readJSON(r, &i); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.AddIncome(r.Context(), i); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleSaveDiaryEntry(w http.ResponseWriter, r *http.Request) {
	var e model.DiaryEntry
	if err := s.readJSON(r, &e); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.SaveDiaryEntry(r.Context(), e); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

func (s *Server) handleDeleteDiaryEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteDiaryEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveAnalysis(w http.ResponseWriter, r *http.Request) {
	var a model.SavedAnalysis
	if err := s.readJSON(r, &a); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	saved, err := s.dispatcher.SaveAnalysis(r.Context(), a)
	if err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleArchiveAnalysis(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Archived bool `json:"archived"`
	}
	if err := s.readJSON(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.dispatcher.ToggleArchiveAnalysis(r.Context(), chi.URLParam(r, "id"), body.Archived); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (s *Server) handleDeleteAnalysis(w http.ResponseWriter, r *http.Request) {
	if err := s.dispatcher.DeleteAnalysis(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusBadGateway, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetRate(w http.ResponseWriter, _ *http.Request) {
	manual, hasManual := s.rates.Manual()
	resp := map[string]any{
		"current": s.rates.Current(),
		"fetched": s.rates.Fetched(),
	}
	if hasManual {
		resp["manual"] = manual
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetManualRate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Rate float64 `json:"rate"`
	}
	if err := s.readJSON(r, &body); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.rates.SetManual(body.Rate)
	s.handleGetRate(w, r)
}

func (s *Server) handleClearManualRate(w http.ResponseWriter, r *http.Request) {
	s.rates.ClearManual()
	s.handleGetRate(w, r)
}

func (s *Server) handleNotifications(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.notifier.List())
}

func (s *Server) handleDismissNotification(w http.ResponseWriter, r *http.Request) {
	s.notifier.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
