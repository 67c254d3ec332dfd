package seed

import (
	"context"
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"medistore/m/domain"
	"medistore/m/internal/store"
)

// LoadCatalog ingests a medicine CSV into the repository, skipping names
// already present. Expected columns: name, stock, price, batch, supplier,
// expiry_date, schedule.
func LoadCatalog(ctx context.Context, repo store.Repository, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load medicine catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	existing, err := repo.ListMedicines(ctx)
	if err != nil {
		log.Printf("unable to check existing catalog: %v", err)
		return
	}
	known := make(map[string]bool, len(existing))
	for _, m := range existing {
		known[strings.ToLower(m.Name)] = true
	}

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read catalog header: %v", err)
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read catalog row: %v", err)
			continue
		}
		if len(record) < 7 {
			continue
		}
		name := strings.TrimSpace(record[0])
		if name == "" || known[strings.ToLower(name)] {
			continue
		}
		stock, _ := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		price, _ := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)

		m := domain.Medicine{
			Name:       name,
			Stock:      stock,
			Price:      price,
			Batch:      strings.TrimSpace(record[3]),
			Supplier:   strings.TrimSpace(record[4]),
			ExpiryDate: strings.TrimSpace(record[5]),
			Schedule:   strings.TrimSpace(record[6]),
		}
		if _, err := repo.SaveMedicine(ctx, m); err != nil {
			log.Printf("unable to import medicine %s: %v", name, err)
			continue
		}
		known[strings.ToLower(name)] = true
		rows++
	}

	log.Printf("imported medicine catalog with %d rows", rows)
}
