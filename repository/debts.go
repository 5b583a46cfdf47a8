package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/juanFRANvelilla/backendTFG/model"
)

type DebtRepoMysql struct {
	db *sql.DB
}

func NewDebtRepoMysql(db *sql.DB) *DebtRepoMysql {
	return &DebtRepoMysql{db: db}
}

const debtColumns = "id, creditor, debtor, amount, date, description, paid"

func (d *DebtRepoMysql) FindUnpaidByCreditor(creditorID int) ([]model.Debt, error) {
	statement := `SELECT ` + debtColumns + `
					FROM debts
					WHERE creditor = ? AND paid = false`
	return d.queryDebts(statement, creditorID)
}

func (d *DebtRepoMysql) FindUnpaidByDebtor(debtorID int) ([]model.Debt, error) {
	statement := `SELECT ` + debtColumns + `
					FROM debts
					WHERE debtor = ? AND paid = false`
	return d.queryDebts(statement, debtorID)
}

func (d *DebtRepoMysql) FindAllBetween(userOne, userTwo int) ([]model.Debt, error) {
	statement := `SELECT ` + debtColumns + `
					FROM debts
					WHERE (creditor = ? AND debtor = ?) OR (creditor = ? AND debtor = ?)`
	return d.queryDebts(statement, userOne, userTwo, userTwo, userOne)
}

func (d *DebtRepoMysql) FindByID(id int64) (*model.Debt, error) {
	statement := "SELECT " + debtColumns + " FROM debts WHERE id = ?"
	debt := &model.Debt{}
	err := d.db.QueryRow(statement, id).
		Scan(&debt.ID, &debt.CreditorID, &debt.DebtorID, &debt.Amount, &debt.Date, &debt.Description, &debt.Paid)
	if err != nil {
		return nil, err
	}
	return debt, nil
}

// Settle runs the whole netting pass in one serializable transaction:
// lock the open opposite-direction entries, let plan compute the write
// set against them, pay off consumed entries, shrink the partially
// consumed one, insert the residual entry. All or nothing. FOR UPDATE
// keeps a concurrent claim on the same pair waiting until the commit,
// so its plan sees the entries this one already consumed.
func (d *DebtRepoMysql) Settle(creditorID, debtorID int, plan func(prior []model.Debt) *model.Settlement) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	conn, err := d.db.Conn(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	// BEGIN TRANSACTION
	tx, err := conn.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return 0, err
	}

	// DEFER ROLLBACK
	defer tx.Rollback()

	prior, err := d.lockUnpaidBetween(ctx, tx, creditorID, debtorID)
	if err != nil {
		return 0, err
	}

	settlement := plan(prior)

	for _, id := range settlement.PaidIDs {
		statement := "UPDATE debts SET paid = true WHERE id = ?"
		if _, err := tx.ExecContext(ctx, statement, id); err != nil {
			return 0, err
		}
	}

	if settlement.ReducedID != 0 {
		statement := "UPDATE debts SET amount = ? WHERE id = ?"
		if _, err := tx.ExecContext(ctx, statement, settlement.ReducedAmount, settlement.ReducedID); err != nil {
			return 0, err
		}
	}

	statement := "INSERT INTO debts(creditor, debtor, amount, date, description, paid) VALUES(?, ?, ?, ?, ?, ?)"
	result, err := tx.ExecContext(ctx, statement,
		settlement.New.CreditorID, settlement.New.DebtorID, settlement.New.Amount,
		settlement.New.Date, settlement.New.Description, settlement.New.Paid)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	// COMMIT TRANSACTION
	if err := tx.Commit(); err != nil {
		msg := fmt.Sprintf("error applying settlement: %s", err)
		return 0, errors.New(msg)
	}
	return id, nil
}

// lockUnpaidBetween reads the open entries for exactly this direction,
// oldest first, taking exclusive row locks inside the caller's
// transaction.
func (d *DebtRepoMysql) lockUnpaidBetween(ctx context.Context, tx *sql.Tx, creditorID, debtorID int) ([]model.Debt, error) {
	statement := `SELECT ` + debtColumns + `
					FROM debts
					WHERE creditor = ? AND debtor = ? AND paid = false
					ORDER BY date ASC
					FOR UPDATE`
	rows, err := tx.QueryContext(ctx, statement, creditorID, debtorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := []model.Debt{}
	for rows.Next() {
		var debt model.Debt
		err := rows.Scan(&debt.ID, &debt.CreditorID, &debt.DebtorID, &debt.Amount, &debt.Date, &debt.Description, &debt.Paid)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return debts, nil
}

func (d *DebtRepoMysql) MarkPaid(id int64) error {
	statement := "UPDATE debts SET paid = true WHERE id = ?"
	_, err := d.db.Exec(statement, id)
	return err
}

func (d *DebtRepoMysql) queryDebts(statement string, args ...interface{}) ([]model.Debt, error) {
	rows, err := d.db.Query(statement, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	debts := []model.Debt{}
	for rows.Next() {
		var debt model.Debt
		err := rows.Scan(&debt.ID, &debt.CreditorID, &debt.DebtorID, &debt.Amount, &debt.Date, &debt.Description, &debt.Paid)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return debts, nil
}
