package postgres

import (
	"context"
	"database/sql"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) RecordRepo() port.RecordRepository {
	if u.tx != nil {
		return NewSqlRecordRepository(u.tx)
	}
	return NewSqlRecordRepository(u.db)
}

func (u *sqlUnitOfWork) GrantRepo() port.GrantRepository {
	if u.tx != nil {
		return NewSqlGrantRepository(u.tx)
	}
	return NewSqlGrantRepository(u.db)
}

func (u *sqlUnitOfWork) EventRepo() port.EventRepository {
	if u.tx != nil {
		return NewSqlEventRepository(u.tx)
	}
	return NewSqlEventRepository(u.db)
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
