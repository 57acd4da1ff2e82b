package employee_test

import (
	"context"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	employeeMock "go-payroll/internal/employee/mock"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func setupEmployeeTest(t *testing.T) (employee.Service, *employeeMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	return employee.NewService(repo), repo
}

var (
	adminActor = domain.Actor{EmployeeID: 1, EmployeeCode: "admin", Role: domain.RoleAdmin}
	selfActor  = domain.Actor{EmployeeID: 2, EmployeeCode: "E002", Role: domain.RoleEmployee}
)

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes password and defaults role", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.NotEqual(t, "secret123", empl.Password)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte("secret123")))
				assert.Equal(t, domain.RoleEmployee, empl.Role)
				assert.NotNil(t, empl.HireDate)
				assert.Equal(t, "2024-03-01", empl.HireDate.Format("2006-01-02"))
				empl.ID = 10
				return nil
			})

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "E010",
			Name:         "Chen Jing",
			Password:     "secret123",
			HireDate:     "2024-03-01",
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(10), resp.ID)
		assert.Equal(t, "E010", resp.EmployeeCode)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		svc, _ := setupEmployeeTest(t)

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "E010",
			Name:         "Chen Jing",
			Password:     "secret123",
			HireDate:     "01/03/2024",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("duplicate employee code from unique index", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_employee_code",
		})

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "E010",
			Name:         "Chen Jing",
			Password:     "secret123",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrDuplicateCode)
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("admin sees the whole directory", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindAll(gomock.Any()).Return([]employee.Employee{
			{ID: 1, EmployeeCode: "admin"},
			{ID: 2, EmployeeCode: "E002"},
		}, nil)

		resp, err := svc.List(ctx, adminActor)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("employee sees only their own record", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			Return(&employee.Employee{ID: 2, EmployeeCode: "E002"}, nil)

		resp, err := svc.List(ctx, selfActor)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "E002", resp[0].EmployeeCode)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("foreign record is reported as missing", func(t *testing.T) {
		svc, _ := setupEmployeeTest(t)

		_, err := svc.GetByID(ctx, selfActor, 3)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("own record", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			Return(&employee.Employee{ID: 2, EmployeeCode: "E002"}, nil)

		resp, err := svc.GetByID(ctx, selfActor, 2)
		assert.NoError(t, err)
		assert.Equal(t, uint(2), resp.ID)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("patch leaves absent fields untouched", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			Return(&employee.Employee{ID: 2, EmployeeCode: "E002", Name: "Old Name", Phone: "100"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.Equal(t, "New Name", empl.Name)
				assert.Equal(t, "100", empl.Phone)
				return nil
			})

		name := "New Name"
		resp, err := svc.Update(ctx, selfActor, 2, employee.UpdateEmployeeRequest{Name: &name})
		assert.NoError(t, err)
		assert.Equal(t, "New Name", resp.Name)
	})

	t.Run("non-admin cannot change role", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			Return(&employee.Employee{ID: 2, Role: domain.RoleEmployee}, nil)

		role := "admin"
		_, err := svc.Update(ctx, selfActor, 2, employee.UpdateEmployeeRequest{Role: &role})
		assert.ErrorIs(t, err, employeeerrors.ErrRoleChangeForbidden)
	})

	t.Run("new password is re-hashed", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().FindByID(gomock.Any(), uint(2)).
			Return(&employee.Employee{ID: 2}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, empl *employee.Employee) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte("changed456")))
				return nil
			})

		password := "changed456"
		_, err := svc.Update(ctx, selfActor, 2, employee.UpdateEmployeeRequest{Password: &password})
		assert.NoError(t, err)
	})

	t.Run("foreign record is reported as missing", func(t *testing.T) {
		svc, _ := setupEmployeeTest(t)

		name := "x"
		_, err := svc.Update(ctx, selfActor, 9, employee.UpdateEmployeeRequest{Name: &name})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin deletes", func(t *testing.T) {
		svc, repo := setupEmployeeTest(t)

		repo.EXPECT().Delete(gomock.Any(), uint(3)).Return(nil)

		assert.NoError(t, svc.Delete(ctx, adminActor, 3))
	})

	t.Run("employee cannot delete", func(t *testing.T) {
		svc, _ := setupEmployeeTest(t)

		err := svc.Delete(ctx, selfActor, 3)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
