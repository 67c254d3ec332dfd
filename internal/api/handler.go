package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"medistore/m/domain"
	"medistore/m/internal/billing"
	"medistore/m/internal/csvexport"
	"medistore/m/internal/expiry"
	"medistore/m/internal/prescription"
	"medistore/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	repo store.Repository
	now  func() time.Time
}

// New constructs a Handler.
func New(repo store.Repository) *Handler {
	return &Handler{repo: repo, now: time.Now}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)

	r.Route("/medicines", func(r chi.Router) {
		r.Get("/", h.listMedicines)
		r.Post("/", h.createMedicine)
		r.Get("/{id}", h.getMedicine)
		r.Put("/{id}", h.updateMedicine)
		r.Delete("/{id}", h.deleteMedicine)
		r.Post("/{id}/stock", h.adjustStock)
	})

	r.Get("/expiry", h.expiryReport)

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.createTransaction)
		r.Get("/", h.listTransactions)
		r.Get("/{id}", h.getTransaction)
	})

	r.Get("/reports/dashboard", h.dashboard)

	r.Route("/export", func(r chi.Router) {
		r.Get("/inventory", h.exportInventory)
		r.Get("/transactions", h.exportTransactions)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// classify fills the derived expiry and stock fields on a medicine. An
// unparseable or empty expiry date classifies as carrying no expiry.
func (h *Handler) classify(m *domain.Medicine, opts expiry.Options) {
	expiryDate, err := domain.ParseDate(m.ExpiryDate)
	if err != nil {
		expiryDate = time.Time{}
	}
	c := expiry.Classify(expiryDate, h.now().UTC(), m.Stock, opts)
	m.DaysUntilExpiry = c.DaysUntilExpiry
	m.IsExpired = c.IsExpired
	m.IsLowStock = c.IsLowStock
	m.IsExpiringSoon = c.IsExpiringSoon
	m.Status = c.Status
}

// Medicine handlers

type medicineRequest struct {
	Name       string  `json:"name"`
	Stock      int64   `json:"stock"`
	Price      float64 `json:"price"`
	Batch      string  `json:"batch"`
	Supplier   string  `json:"supplier"`
	ExpiryDate string  `json:"expiryDate"`
	Schedule   string  `json:"schedule"`
}

func (req *medicineRequest) validate() error {
	if strings.TrimSpace(req.Name) == "" {
		return errors.New("name is required")
	}
	if req.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	if req.Price < 0 {
		return errors.New("price must not be negative")
	}
	if req.ExpiryDate != "" {
		if _, err := domain.ParseDate(req.ExpiryDate); err != nil {
			return errors.New("expiryDate must be in YYYY-MM-DD format")
		}
	}
	switch req.Schedule {
	case domain.ScheduleNone, domain.ScheduleH, domain.ScheduleX:
		return nil
	default:
		return errors.New("schedule must be empty, H or X")
	}
}

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.repo.ListMedicines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list medicines")
		return
	}

	opts := expiry.Options{WarningWindowDays: windowDays(r)}
	stats := domain.InventoryStats{TotalMedicines: len(medicines)}
	for i := range medicines {
		h.classify(&medicines[i], opts)
		if medicines[i].IsLowStock {
			stats.LowStockCount++
		}
		if medicines[i].IsExpiringSoon {
			stats.ExpiringSoonCount++
		}
		stats.TotalValue += float64(medicines[i].Stock) * medicines[i].Price
	}

	query := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	filter := r.URL.Query().Get("filter")
	filtered := make([]domain.Medicine, 0, len(medicines))
	for _, m := range medicines {
		if query != "" &&
			!strings.Contains(strings.ToLower(m.Name), query) &&
			!strings.Contains(strings.ToLower(m.Supplier), query) &&
			!strings.Contains(strings.ToLower(m.Batch), query) {
			continue
		}
		switch filter {
		case "low-stock":
			if !m.IsLowStock {
				continue
			}
		case "expiring":
			if !m.IsExpiringSoon {
				continue
			}
		case "expired":
			if !m.IsExpired {
				continue
			}
		}
		filtered = append(filtered, m)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"medicines": filtered,
		"stats":     stats,
		"total":     len(filtered),
	})
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m := domain.Medicine{
		Name:       strings.TrimSpace(req.Name),
		Stock:      req.Stock,
		Price:      req.Price,
		Batch:      req.Batch,
		Supplier:   req.Supplier,
		ExpiryDate: req.ExpiryDate,
		Schedule:   req.Schedule,
	}
	saved, err := h.repo.SaveMedicine(r.Context(), m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to save medicine")
		return
	}
	h.classify(&saved, expiry.Options{})
	respondJSON(w, http.StatusCreated, saved)
}

func (h *Handler) getMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	m, err := h.repo.GetMedicine(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch medicine")
		return
	}
	h.classify(&m, expiry.Options{WarningWindowDays: windowDays(r)})
	respondJSON(w, http.StatusOK, m)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := req.validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	m := domain.Medicine{
		ID:         id,
		Name:       strings.TrimSpace(req.Name),
		Stock:      req.Stock,
		Price:      req.Price,
		Batch:      req.Batch,
		Supplier:   req.Supplier,
		ExpiryDate: req.ExpiryDate,
		Schedule:   req.Schedule,
	}
	saved, err := h.repo.SaveMedicine(r.Context(), m)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update medicine")
		return
	}
	h.classify(&saved, expiry.Options{})
	respondJSON(w, http.StatusOK, saved)
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	err = h.repo.DeleteMedicine(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete medicine")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) adjustStock(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid medicine id")
		return
	}
	var payload struct {
		Delta int64 `json:"delta"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if payload.Delta == 0 {
		respondError(w, http.StatusBadRequest, "delta must not be zero")
		return
	}

	m, err := h.repo.GetMedicine(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "medicine not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch medicine")
		return
	}
	if m.Stock+payload.Delta < 0 {
		respondError(w, http.StatusBadRequest, "insufficient stock")
		return
	}
	m.Stock += payload.Delta
	saved, err := h.repo.SaveMedicine(r.Context(), m)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update stock")
		return
	}
	h.classify(&saved, expiry.Options{})
	respondJSON(w, http.StatusOK, saved)
}

// Expiry report

func (h *Handler) expiryReport(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.repo.ListMedicines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list medicines")
		return
	}

	opts := expiry.Options{WarningWindowDays: windowDays(r)}
	expiring := make([]domain.Medicine, 0, len(medicines))
	var stats domain.ExpiryStats
	for i := range medicines {
		if medicines[i].ExpiryDate == "" {
			continue
		}
		h.classify(&medicines[i], opts)
		m := medicines[i]
		if !m.IsExpired && !m.IsExpiringSoon {
			continue
		}
		expiring = append(expiring, m)
		if m.IsExpired {
			stats.Expired++
		}
		if m.DaysUntilExpiry > 0 && m.DaysUntilExpiry <= 15 {
			stats.Expiring15Days++
		}
		if m.DaysUntilExpiry > 0 && m.DaysUntilExpiry <= 30 {
			stats.Expiring30Days++
		}
		stats.TotalValue += float64(m.Stock) * m.Price
	}

	// Soonest expiry first; expired medicines sort to the top.
	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].DaysUntilExpiry < expiring[j].DaysUntilExpiry
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"medicines": expiring,
		"stats":     stats,
		"total":     len(expiring),
	})
}

// Transaction handlers

type transactionItemRequest struct {
	MedicineID   int64   `json:"medicineId"`
	MedicineName string  `json:"medicineName"`
	Quantity     int64   `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	TaxRate      float64 `json:"taxRate"`
}

type prescriptionUpload struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type transactionRequest struct {
	Date                string                   `json:"date"`
	Type                string                   `json:"type"`
	Items               []transactionItemRequest `json:"items"`
	CounterpartName     string                   `json:"counterpartName"`
	InvoiceNumber       string                   `json:"invoiceNumber"`
	GSTNumber           string                   `json:"gstNumber"`
	TotalDiscount       float64                  `json:"totalDiscount"`
	PaymentMethod       string                   `json:"paymentMethod"`
	FinancialYear       string                   `json:"financialYear"`
	Notes               string                   `json:"notes"`
	PrescriptionSkipped bool                     `json:"prescriptionSkipped"`
	Prescription        *prescriptionUpload      `json:"prescription"`
}

func (h *Handler) createTransaction(w http.ResponseWriter, r *http.Request) {
	var req transactionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Type != domain.TypeSell && req.Type != domain.TypePurchase {
		respondError(w, http.StatusBadRequest, "type must be sell or purchase")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "at least one item is required")
		return
	}

	date := h.now().UTC()
	if req.Date != "" {
		parsed, err := domain.ParseDate(req.Date)
		if err != nil {
			respondError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	// Resolve catalog medicines: fill names and prices from stock records
	// and collect schedules for the prescription gate. Quantities are summed
	// per medicine id so duplicate lines for the same medicine count against
	// stock together.
	items := make([]domain.LineItem, len(req.Items))
	schedules := make([]string, len(req.Items))
	catalog := make(map[int64]domain.Medicine)
	moved := make(map[int64]int64)
	movedIDs := []int64{}
	for i, item := range req.Items {
		items[i] = domain.LineItem{
			MedicineID:   item.MedicineID,
			MedicineName: item.MedicineName,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Discount:     item.Discount,
			TaxRate:      item.TaxRate,
		}
		if item.MedicineID == 0 {
			continue
		}
		m, ok := catalog[item.MedicineID]
		if !ok {
			var err error
			m, err = h.repo.GetMedicine(r.Context(), item.MedicineID)
			if errors.Is(err, store.ErrNotFound) {
				respondError(w, http.StatusNotFound, fmt.Sprintf("medicine %d not found", item.MedicineID))
				return
			}
			if err != nil {
				respondError(w, http.StatusInternalServerError, "unable to fetch medicine")
				return
			}
			catalog[item.MedicineID] = m
			movedIDs = append(movedIDs, item.MedicineID)
		}
		if items[i].MedicineName == "" {
			items[i].MedicineName = m.Name
		}
		if items[i].Price == 0 {
			items[i].Price = m.Price
		}
		schedules[i] = m.Schedule
		moved[item.MedicineID] += item.Quantity
		if req.Type == domain.TypeSell && m.Stock < moved[item.MedicineID] {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("insufficient stock for %s", m.Name))
			return
		}
	}

	// Schedule-H gate: a sell containing schedule-H medicines needs an
	// upload-or-skip decision before it proceeds. The transaction is
	// recorded either way; only the flag differs.
	prescriptionSkipped := false
	scheduleHCount := int64(0)
	for _, s := range schedules {
		if s == domain.ScheduleH {
			scheduleHCount++
		}
	}
	if prescription.Required(req.Type, schedules) {
		gate := prescription.NewGate()
		if err := gate.Trigger(); err != nil {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		switch {
		case req.Prescription != nil:
			file := prescription.File{
				Name:        req.Prescription.Name,
				ContentType: req.Prescription.ContentType,
				Size:        req.Prescription.Size,
			}
			if err := gate.Upload(file); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		case req.PrescriptionSkipped:
			if err := gate.Skip(); err != nil {
				respondError(w, http.StatusConflict, err.Error())
				return
			}
		default:
			respondError(w, http.StatusConflict, "prescription decision required: upload a prescription or set prescriptionSkipped")
			return
		}
		skipped, err := gate.Skipped()
		if err != nil {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		prescriptionSkipped = skipped
	}

	financialYear := strings.TrimSpace(req.FinancialYear)
	if financialYear == "" {
		financialYear = billing.FinancialYearOf(date)
	}

	t := domain.Transaction{
		Date:                domain.FormatDate(date),
		Type:                req.Type,
		Items:               items,
		CounterpartName:     req.CounterpartName,
		InvoiceNumber:       req.InvoiceNumber,
		GSTNumber:           req.GSTNumber,
		TotalDiscount:       req.TotalDiscount,
		PaymentMethod:       req.PaymentMethod,
		FinancialYear:       financialYear,
		Notes:               req.Notes,
		PrescriptionSkipped: prescriptionSkipped,
		ScheduleHCount:      scheduleHCount,
	}
	if err := billing.Apply(&t); err != nil {
		var vErr *billing.ValidationError
		if errors.As(err, &vErr) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to price transaction")
		return
	}

	// Apply stock movements for catalog-linked lines: sells decrement,
	// purchases increment. Medicines move in id order so a partial failure
	// leaves a reproducible state.
	sort.Slice(movedIDs, func(i, j int) bool { return movedIDs[i] < movedIDs[j] })
	for _, id := range movedIDs {
		m := catalog[id]
		if req.Type == domain.TypeSell {
			m.Stock -= moved[id]
		} else {
			m.Stock += moved[id]
		}
		if _, err := h.repo.SaveMedicine(r.Context(), m); err != nil {
			respondError(w, http.StatusInternalServerError, "unable to update stock")
			return
		}
	}

	saved, err := h.repo.SaveTransaction(r.Context(), t)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to save transaction")
		return
	}
	respondJSON(w, http.StatusCreated, saved)
}

func (h *Handler) transactionFilter(r *http.Request) (store.TransactionFilter, error) {
	filter := store.TransactionFilter{
		FinancialYear: strings.TrimSpace(r.URL.Query().Get("financial_year")),
	}
	if filter.FinancialYear == "" {
		filter.FinancialYear = billing.FinancialYearOf(h.now().UTC())
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("from must be in YYYY-MM-DD format")
		}
		filter.From = parsed
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			return filter, errors.New("to must be in YYYY-MM-DD format")
		}
		filter.To = parsed
	}
	return filter, nil
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := h.transactionFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	transactions, err := h.repo.ListTransactions(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list transactions")
		return
	}

	// The repository already applied the filter; summarize the whole set.
	summary := billing.Summarize(transactions, "", time.Time{}, time.Time{})
	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": transactions,
		"taxSummary":   summary,
		"total":        len(transactions),
	})
}

func (h *Handler) getTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}
	t, err := h.repo.GetTransaction(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch transaction")
		return
	}
	respondJSON(w, http.StatusOK, t)
}

// Reports

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.repo.ListMedicines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list medicines")
		return
	}
	today := domain.FormatDate(h.now().UTC())
	transactions, err := h.repo.ListTransactions(r.Context(), store.TransactionFilter{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list transactions")
		return
	}

	var stats domain.DashboardStats
	for i := range medicines {
		h.classify(&medicines[i], expiry.Options{})
		if medicines[i].IsLowStock {
			stats.LowStockAlerts++
		}
		if medicines[i].IsExpiringSoon || medicines[i].IsExpired {
			stats.ExpiringMedicines++
		}
		stats.TotalInventory += int(medicines[i].Stock)
		stats.TotalStockValue += float64(medicines[i].Stock) * medicines[i].Price
	}
	for _, t := range transactions {
		if t.Date == today {
			stats.TodayTransactions++
		}
	}
	respondJSON(w, http.StatusOK, stats)
}

// CSV export

func (h *Handler) exportInventory(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.repo.ListMedicines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list medicines")
		return
	}
	opts := expiry.Options{WarningWindowDays: windowDays(r)}

	headers := []string{"Medicine Name", "Batch", "Supplier", "Stock", "Price", "Expiry Date", "Days Until Expiry", "Status"}
	rows := make([]map[string]string, 0, len(medicines))
	for i := range medicines {
		h.classify(&medicines[i], opts)
		m := medicines[i]
		rows = append(rows, map[string]string{
			"Medicine Name":     m.Name,
			"Batch":             m.Batch,
			"Supplier":          m.Supplier,
			"Stock":             strconv.FormatInt(m.Stock, 10),
			"Price":             formatAmount(m.Price),
			"Expiry Date":       m.ExpiryDate,
			"Days Until Expiry": strconv.Itoa(m.DaysUntilExpiry),
			"Status":            m.Status,
		})
	}
	h.respondCSV(w, r, headers, rows, "inventory")
}

func (h *Handler) exportTransactions(w http.ResponseWriter, r *http.Request) {
	filter, err := h.transactionFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	transactions, err := h.repo.ListTransactions(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list transactions")
		return
	}

	headers := []string{"Date", "Type", "Invoice Number", "Counterpart", "GST Number", "Total Amount", "Discount Amount", "Tax Amount", "Net Amount", "Payment Method", "Financial Year"}
	rows := make([]map[string]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, map[string]string{
			"Date":            t.Date,
			"Type":            t.Type,
			"Invoice Number":  t.InvoiceNumber,
			"Counterpart":     t.CounterpartName,
			"GST Number":      t.GSTNumber,
			"Total Amount":    formatAmount(t.TotalAmount),
			"Discount Amount": formatAmount(t.DiscountAmount),
			"Tax Amount":      formatAmount(t.TaxAmount),
			"Net Amount":      formatAmount(t.NetAmount),
			"Payment Method":  t.PaymentMethod,
			"Financial Year":  t.FinancialYear,
		})
	}
	h.respondCSV(w, r, headers, rows, "transactions")
}

func (h *Handler) respondCSV(w http.ResponseWriter, r *http.Request, headers []string, rows []map[string]string, kind string) {
	content, err := csvexport.Export(headers, rows)
	if errors.Is(err, csvexport.ErrNoData) {
		respondError(w, http.StatusBadRequest, "no data to export")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to export")
		return
	}

	filename := strings.TrimSpace(r.URL.Query().Get("filename"))
	if filename == "" {
		filename = fmt.Sprintf("%s-%s.csv", kind, domain.FormatDate(h.now().UTC()))
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(content))
}

// Helpers

// windowDays reads the expiring-soon window from the request (the UI
// offers 15/30/60/90), defaulting to 30.
func windowDays(r *http.Request) int {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))
	if days <= 0 {
		days = expiry.DefaultWarningWindowDays
	}
	return days
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
