package database

import (
	"database/sql"
	"errors"
	"fmt"

	"ofi/model"

	"github.com/jmoiron/sqlx"
)

var (
	ErrDuplicateOrder  = errors.New("order number already exists")
	ErrStageOutOfRange = errors.New("stage counter out of range")
)

// CreateOrder は新規受注を登録します。工程カウンタは0で初期化されます。
func CreateOrder(db *sqlx.DB, o model.Order) error {
	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction for order create: %w", err)
	}
	defer tx.Rollback()

	exists, err := checkOrderExistsInTx(tx, o.OrderNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateOrder
	}

	const q = `
		INSERT INTO orders (order_number, customer, product, due_date, quantity)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(q, o.OrderNumber, o.Customer, o.Product, o.DueDate, o.Quantity); err != nil {
		return fmt.Errorf("CreateOrder (OrderNumber: %s) failed: %w", o.OrderNumber, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order create: %w", err)
	}
	return nil
}

func checkOrderExistsInTx(tx *sqlx.Tx, orderNumber string) (bool, error) {
	var one int
	const q = `SELECT 1 FROM orders WHERE order_number = ? LIMIT 1`
	err := tx.QueryRow(q, orderNumber).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("checkOrderExistsInTx failed: %w", err)
	}
	return true, nil
}

// ListOrders は受注の一覧を返します。numberFilter は受注番号の部分一致です。
func ListOrders(db *sqlx.DB, numberFilter string) ([]model.Order, error) {
	var orders []model.Order
	var err error
	if numberFilter != "" {
		err = db.Select(&orders, `SELECT * FROM orders WHERE order_number LIKE ? ORDER BY id`, "%"+numberFilter+"%")
	} else {
		err = db.Select(&orders, `SELECT * FROM orders ORDER BY id`)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func GetOrderByID(db *sqlx.DB, id int) (*model.Order, error) {
	var o model.Order
	err := db.Get(&o, `SELECT * FROM orders WHERE id = ?`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetOrderByID (ID: %d) failed: %w", id, err)
	}
	return &o, nil
}

func GetOrderByNumber(db *sqlx.DB, orderNumber string) (*model.Order, error) {
	var o model.Order
	err := db.Get(&o, `SELECT * FROM orders WHERE order_number = ?`, orderNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("GetOrderByNumber (OrderNumber: %s) failed: %w", orderNumber, err)
	}
	return &o, nil
}

// UpdateOrderStages は4工程のカウンタを無条件で上書きします。
// 各値は [0, quantity] の範囲内でなければなりません。
func UpdateOrderStages(db *sqlx.DB, u model.StageUpdate) error {
	order, err := GetOrderByID(db, u.ID)
	if err != nil {
		return err
	}
	if order == nil {
		return sql.ErrNoRows
	}

	for _, v := range []int{u.Cutting, u.Sewing, u.Finishing, u.Packaging} {
		if v < 0 || v > order.Quantity {
			return fmt.Errorf("%w: order %s allows 0..%d", ErrStageOutOfRange, order.OrderNumber, order.Quantity)
		}
	}

	const q = `UPDATE orders SET cutting = ?, sewing = ?, finishing = ?, packaging = ? WHERE id = ?`
	if _, err := db.Exec(q, u.Cutting, u.Sewing, u.Finishing, u.Packaging, u.ID); err != nil {
		return fmt.Errorf("UpdateOrderStages (ID: %d) failed: %w", u.ID, err)
	}
	return nil
}

// UpsertOrderInTx はCSVインポート用に受注を挿入または更新します。
// 既存行の工程カウンタは保持されます。
func UpsertOrderInTx(tx *sqlx.Tx, o model.Order) error {
	const q = `
		INSERT INTO orders (order_number, customer, product, due_date, quantity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(order_number) DO UPDATE SET
			customer = excluded.customer,
			product = excluded.product,
			due_date = excluded.due_date,
			quantity = excluded.quantity
	`
	if _, err := tx.Exec(q, o.OrderNumber, o.Customer, o.Product, o.DueDate, o.Quantity); err != nil {
		return fmt.Errorf("UpsertOrderInTx (OrderNumber: %s) failed: %w", o.OrderNumber, err)
	}
	return nil
}
