package store_test

import (
	"time"

	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/store"
	"github.com/fincontrol/backend/internal/types"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestOwnershipIsolation() {
	alice, bob := uuid.New(), uuid.New()
	category := suite.createCategory(alice, "Moradia")

	// Bob cannot read Alice's category
	_, err := store.Get[models.Category](suite.ctx, suite.store, bob, category.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// Bob cannot update it
	_, ok, err := store.Update(suite.ctx, suite.store, bob, category.ID, []string{"Name"}, models.Category{Name: "Hacked"})
	suite.Require().Nil(err)
	suite.Assert().False(ok)

	// Bob cannot delete it
	suite.Require().Nil(store.Delete[models.Category](suite.ctx, suite.store, bob, category.ID))

	// Bob does not see it in lists
	categories, err := suite.store.Categories(suite.ctx, bob)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 0)

	found, err := store.Get[models.Category](suite.ctx, suite.store, alice, category.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("Moradia", found.Name)
}

func (suite *TestSuiteStandard) TestDeleteNonExistent() {
	owner := uuid.New()
	category := suite.createCategory(owner, "Lazer")

	suite.Assert().Nil(store.Delete[models.Category](suite.ctx, suite.store, owner, uuid.New()))
	suite.Assert().Nil(store.Delete[models.Goal](suite.ctx, suite.store, owner, uuid.New()))

	categories, err := suite.store.Categories(suite.ctx, owner)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 1)
	suite.Assert().Equal(category.ID, categories[0].ID)
}

func (suite *TestSuiteStandard) TestUpdateOnlySelectedFields() {
	owner := uuid.New()
	expense := models.FixedExpense{OwnedModel: owned(owner), Name: "Aluguel", Amount: 150000, DueDay: 10, IsActive: true}
	suite.Require().Nil(store.Create(suite.ctx, suite.store, &expense))

	// IsActive is a zero value, but selected, so it must be written
	updated, ok, err := store.Update(suite.ctx, suite.store, owner, expense.ID, []string{"Amount", "IsActive"}, models.FixedExpense{Amount: 160000})
	suite.Require().Nil(err)
	suite.Require().True(ok)

	suite.Assert().Equal("Aluguel", updated.Name)
	suite.Assert().Equal(10, updated.DueDay)
	suite.Assert().EqualValues(160000, updated.Amount)
	suite.Assert().False(updated.IsActive)
}

func (suite *TestSuiteStandard) TestUpdateWithoutFields() {
	owner := uuid.New()
	category := suite.createCategory(owner, "Saúde")

	found, ok, err := store.Update(suite.ctx, suite.store, owner, category.ID, nil, models.Category{})
	suite.Require().Nil(err)
	suite.Assert().True(ok)
	suite.Assert().Equal("Saúde", found.Name)

	_, ok, err = store.Update(suite.ctx, suite.store, owner, uuid.New(), nil, models.Category{})
	suite.Require().Nil(err)
	suite.Assert().False(ok)
}

func (suite *TestSuiteStandard) TestFixedExpensesOrderedByDueDay() {
	owner := uuid.New()
	for _, day := range []int{20, 5, 12} {
		e := models.FixedExpense{OwnedModel: owned(owner), Name: "Conta", DueDay: day, IsActive: day != 12}
		suite.Require().Nil(store.Create(suite.ctx, suite.store, &e))
	}

	expenses, err := suite.store.FixedExpenses(suite.ctx, owner)
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 3)
	suite.Assert().Equal([]int{5, 12, 20}, []int{expenses[0].DueDay, expenses[1].DueDay, expenses[2].DueDay})

	active, err := suite.store.ActiveFixedExpenses(suite.ctx, owner)
	suite.Require().Nil(err)
	suite.Require().Len(active, 2)
	suite.Assert().Equal(5, active[0].DueDay)
	suite.Assert().Equal(20, active[1].DueDay)
}

func (suite *TestSuiteStandard) TestDateRange() {
	owner := uuid.New()
	dates := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		income := models.Income{OwnedModel: owned(owner), Name: "Freela", Amount: 1000, Date: d}
		suite.Require().Nil(store.Create(suite.ctx, suite.store, &income))
	}

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC)

	tests := []struct {
		name  string
		r     store.DateRange
		count int
	}{
		{"Inclusive range", store.DateRange{Start: start, End: end}, 3},
		{"No range", store.DateRange{}, 5},
		{"Only start", store.DateRange{Start: start}, 5},
		{"Start after end", store.DateRange{Start: end, End: start}, 5},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			incomes, err := suite.store.Incomes(suite.ctx, owner, tt.r)
			suite.Require().Nil(err)
			suite.Assert().Len(incomes, tt.count)

			// Newest first
			for i := 1; i < len(incomes); i++ {
				suite.Assert().False(incomes[i].Date.After(incomes[i-1].Date))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateStoresDatesInUTC() {
	owner := uuid.New()
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	march := store.DateRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 31, 23, 59, 59, 999999999, time.UTC),
	}
	april := store.DateRange{
		Start: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 4, 30, 23, 59, 59, 999999999, time.UTC),
	}

	expense := models.VariableExpense{OwnedModel: owned(owner), Name: "Mercado", Amount: 1000, Date: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), Installments: 1, CurrentInstallment: 1}
	suite.Require().Nil(store.Create(suite.ctx, suite.store, &expense))

	income := models.Income{OwnedModel: owned(owner), Name: "Freela", Amount: 1000, Date: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	suite.Require().Nil(store.Create(suite.ctx, suite.store, &income))

	// 22:00 on March 31st in São Paulo is April 1st in UTC
	moved := time.Date(2024, 3, 31, 22, 0, 0, 0, saoPaulo)

	updated, ok, err := store.Update(suite.ctx, suite.store, owner, expense.ID, []string{"Date"}, models.VariableExpense{Date: moved})
	suite.Require().Nil(err)
	suite.Require().True(ok)
	suite.Assert().True(time.Date(2024, 4, 1, 1, 0, 0, 0, time.UTC).Equal(updated.Date), "stored as %s", updated.Date)
	suite.Assert().Equal(time.UTC, updated.Date.Location())

	_, ok, err = store.Update(suite.ctx, suite.store, owner, income.ID, []string{"Date"}, models.Income{Date: moved})
	suite.Require().Nil(err)
	suite.Require().True(ok)

	expenses, err := suite.store.VariableExpenses(suite.ctx, owner, march)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 0, "the expense must not be in March anymore")

	expenses, err = suite.store.VariableExpenses(suite.ctx, owner, april)
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 1)

	incomes, err := suite.store.Incomes(suite.ctx, owner, march)
	suite.Require().Nil(err)
	suite.Assert().Len(incomes, 0, "the income must not be in March anymore")

	incomes, err = suite.store.Incomes(suite.ctx, owner, april)
	suite.Require().Nil(err)
	suite.Assert().Len(incomes, 1)
}

func (suite *TestSuiteStandard) TestReserveBalance() {
	owner := uuid.New()

	balance, err := suite.store.ReserveBalance(suite.ctx, owner)
	suite.Require().Nil(err)
	suite.Assert().EqualValues(0, balance)

	for _, amount := range []int64{100000, -25000, 5050} {
		tx := models.ReserveTransaction{OwnedModel: owned(owner), Amount: types.Cents(amount), Date: time.Now()}
		suite.Require().Nil(store.Create(suite.ctx, suite.store, &tx))
	}

	// Another owner's movement does not count
	other := models.ReserveTransaction{OwnedModel: owned(uuid.New()), Amount: 999, Date: time.Now()}
	suite.Require().Nil(store.Create(suite.ctx, suite.store, &other))

	balance, err = suite.store.ReserveBalance(suite.ctx, owner)
	suite.Require().Nil(err)
	suite.Assert().EqualValues(80050, balance)
}

func (suite *TestSuiteStandard) TestDegradeWhenUnavailable() {
	owner := uuid.New()
	suite.createCategory(owner, "Moradia")
	suite.CloseDB()

	categories, err := suite.store.Categories(suite.ctx, owner)
	suite.Assert().Nil(err)
	suite.Assert().NotNil(categories)
	suite.Assert().Len(categories, 0)

	incomes, err := suite.store.Incomes(suite.ctx, owner, store.DateRange{})
	suite.Assert().Nil(err)
	suite.Assert().Len(incomes, 0)

	balance, err := suite.store.ReserveBalance(suite.ctx, owner)
	suite.Assert().Nil(err)
	suite.Assert().EqualValues(0, balance)

	// Writes are never dropped silently
	err = store.Create(suite.ctx, suite.store, &models.Category{OwnedModel: owned(owner), Name: "Lazer"})
	suite.Assert().ErrorIs(err, models.ErrUnavailable)

	// Single reads report the outage
	_, err = store.Get[models.Category](suite.ctx, suite.store, owner, uuid.New())
	suite.Assert().ErrorIs(err, models.ErrUnavailable)

	_, err = suite.store.Snapshot(suite.ctx, owner)
	suite.Assert().ErrorIs(err, models.ErrUnavailable)

	suite.Assert().ErrorIs(suite.store.Ping(suite.ctx), models.ErrUnavailable)
}

func (suite *TestSuiteStandard) TestEnsureUser() {
	first, err := suite.store.EnsureUser(suite.ctx, models.User{OpenID: models.LocalOpenID, Name: "Local"})
	suite.Require().Nil(err)
	suite.Assert().NotEqual(uuid.Nil, first.ID)

	second, err := suite.store.EnsureUser(suite.ctx, models.User{OpenID: models.LocalOpenID})
	suite.Require().Nil(err)
	suite.Assert().Equal(first.ID, second.ID)
	suite.Assert().Equal("Local", second.Name)

	user, err := suite.store.User(suite.ctx, first.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.LocalOpenID, user.OpenID)
}

func (suite *TestSuiteStandard) TestEnsureUserDefaultCategories() {
	s := store.New(suite.db, store.WithDefaultCategories(models.DefaultCategories()))

	user, err := s.EnsureUser(suite.ctx, models.User{OpenID: "new-user"})
	suite.Require().Nil(err)

	categories, err := s.Categories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Require().Len(categories, 17)
	suite.Assert().Equal("Moradia", categories[0].Name)
	suite.Assert().Equal("🏠", categories[0].Icon)
	suite.Assert().Equal("Outras despesas", categories[16].Name)
	suite.Assert().Equal("📌", categories[16].Icon)

	// Signing in again does not add the categories a second time
	again, err := s.EnsureUser(suite.ctx, models.User{OpenID: "new-user"})
	suite.Require().Nil(err)
	suite.Assert().Equal(user.ID, again.ID)

	categories, err = s.Categories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 17)

	// Users that existed before are left alone
	existing, err := suite.store.EnsureUser(suite.ctx, models.User{OpenID: "existing-user"})
	suite.Require().Nil(err)

	_, err = s.EnsureUser(suite.ctx, models.User{OpenID: "existing-user"})
	suite.Require().Nil(err)

	categories, err = s.Categories(suite.ctx, existing.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 0)
}

func (suite *TestSuiteStandard) TestEnsureUserWithoutDefaultCategories() {
	user, err := suite.store.EnsureUser(suite.ctx, models.User{OpenID: "plain-user"})
	suite.Require().Nil(err)

	categories, err := suite.store.Categories(suite.ctx, user.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 0)
}

func (suite *TestSuiteStandard) TestDeleteOwnerData() {
	alice, bob := uuid.New(), uuid.New()
	suite.createCategory(alice, "Moradia")
	suite.createCategory(bob, "Moradia")

	goal := models.Goal{OwnedModel: owned(alice), Name: "Viagem", TargetAmount: 100}
	suite.Require().Nil(store.Create(suite.ctx, suite.store, &goal))

	suite.Require().Nil(suite.store.DeleteOwnerData(suite.ctx, alice))

	snap, err := suite.store.Snapshot(suite.ctx, alice)
	suite.Require().Nil(err)
	suite.Assert().Len(snap.Categories, 0)
	suite.Assert().Len(snap.Goals, 0)

	categories, err := suite.store.Categories(suite.ctx, bob)
	suite.Require().Nil(err)
	suite.Assert().Len(categories, 1)
}
