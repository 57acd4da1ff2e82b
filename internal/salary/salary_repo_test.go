package salary_test

import (
	"context"
	"testing"

	"go-payroll/internal/salary"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSalaryRepository_CreateWithTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO salaries`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	stmt := &salary.Salary{
		EmployeeID: 2,
		Period:     "2024-06",
		BaseSalary: dec("5000"),
		NetSalary:  dec("5000"),
	}

	repo := salary.NewRepository(nil).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), stmt))
	assert.Equal(t, uint(7), stmt.ID)
	assert.False(t, stmt.CreatedAt.IsZero())

	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
