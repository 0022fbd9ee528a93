package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"
)

// ParsedOrderCSVRecord は受注CSVの1行を表します。
type ParsedOrderCSVRecord struct {
	OrderNumber string
	Customer    string
	Product     string
	DueDate     string // YYYY-MM-DD
	Quantity    int
}

// ParseOrderCSV は受注一覧CSVを解析します。ヘッダー必須。
// 数量が1未満の行と納期が解釈できない行はスキップして警告します。
func ParseOrderCSV(r io.Reader) ([]ParsedOrderCSVRecord, error) {
	reader := csv.NewReader(SkipBOM(r))
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	requiredHeaders := []string{"order_number", "customer", "product", "due_date", "quantity"}
	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	var records []ParsedOrderCSVRecord
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: order CSV line %d read error (skipped): %v", line, err)
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return rec[idx]
			}
			return ""
		}

		orderNumber := get("order_number")
		if orderNumber == "" {
			log.Printf("WARN: order CSV line %d has empty order_number (skipped)", line)
			continue
		}

		quantity, err := strconv.Atoi(get("quantity"))
		if err != nil || quantity < 1 {
			log.Printf("WARN: order CSV line %d has invalid quantity %q (skipped)", line, get("quantity"))
			continue
		}

		dueDate := get("due_date")
		if _, err := time.Parse("2006-01-02", dueDate); err != nil {
			log.Printf("WARN: order CSV line %d has unparseable due_date %q (skipped)", line, dueDate)
			continue
		}

		records = append(records, ParsedOrderCSVRecord{
			OrderNumber: orderNumber,
			Customer:    get("customer"),
			Product:     get("product"),
			DueDate:     dueDate,
			Quantity:    quantity,
		})
	}

	return records, nil
}
