package database

import (
	"fmt"

	"ofi/model"

	"github.com/jmoiron/sqlx"
)

// AddAccessory は付属品明細を1行追記します。同種の既存行とはマージしません。
func AddAccessory(db *sqlx.DB, item model.AccessoryItem) error {
	const q = `
		INSERT INTO accessories_details (order_number, accessory_type, quantity, rate, last_updated)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := db.Exec(q, item.OrderNumber, item.AccessoryType, item.Quantity, item.Rate, item.LastUpdated)
	if err != nil {
		return fmt.Errorf("AddAccessory (OrderNumber: %s, Type: %s) failed: %w", item.OrderNumber, item.AccessoryType, err)
	}
	return nil
}

// GetAccessories は受注の付属品明細を登録順に返します。
func GetAccessories(db *sqlx.DB, orderNumber string) ([]model.AccessoryItem, error) {
	var items []model.AccessoryItem
	const q = `
		SELECT id, order_number, accessory_type, quantity, rate, last_updated
		FROM accessories_details
		WHERE order_number = ?
		ORDER BY id
	`
	if err := db.Select(&items, q, orderNumber); err != nil {
		return nil, fmt.Errorf("GetAccessories (OrderNumber: %s) failed: %w", orderNumber, err)
	}
	return items, nil
}
