package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/mocks"
	"foodcart/foodcart-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleIntent() domain.OrderIntent {
	return domain.OrderIntent{
		FirstName:   "Ivan",
		LastName:    "Petrov",
		PhoneNumber: "+79161234567",
		Address:     "Moscow, Tverskaya 1",
		Items:       []domain.IntentItem{{ProductID: 1, Quantity: 2}},
	}
}

func TestOrderService_Create(t *testing.T) {
	tests := []struct {
		name       string
		repoErr    error
		publishErr error
		wantErr    error
	}{
		{name: "created and published"},
		{name: "publish failure is not surfaced", publishErr: errors.New("broker down")},
		{name: "vanished product", repoErr: domain.ErrProductVanished, wantErr: service.ErrProductVanished},
		{name: "database failure", repoErr: assert.AnError, wantErr: service.ErrPersistence},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			publisher := mocks.NewOrderPublisher(t)
			svc := service.NewOrderService(nil, repo, publisher)
			intent := sampleIntent()

			if testCase.repoErr != nil {
				repo.On("CreateOrder", mock.Anything, intent).Return(nil, testCase.repoErr).Once()
			} else {
				order := &domain.Order{ID: 10, Address: intent.Address, CreatedAt: time.Now()}
				repo.On("CreateOrder", mock.Anything, intent).Return(order, nil).Once()
				publisher.On("PublishOrderCreated", mock.Anything, order).Return(testCase.publishErr).Once()
			}

			order, err := svc.Create(context.Background(), intent)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.ErrorIs(t, err, service.ErrPersistence)
				assert.Nil(t, order)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10, order.ID)
		})
	}
}

func TestOrderService_PublishOutlivesCancelledRequest(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	svc := service.NewOrderService(nil, repo, publisher)
	order := &domain.Order{ID: 3}

	ctx, cancel := context.WithCancel(context.Background())
	repo.On("CreateOrder", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(order, nil).Once()
	publisher.On("PublishOrderCreated", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() == nil
	}), order).Return(nil).Once()

	_, err := svc.Create(ctx, sampleIntent())
	assert.NoError(t, err)
}

func TestOrderService_SubmitIsNotIdempotent(t *testing.T) {
	products := mocks.NewProductRepository(t)
	products.On("ExistingProductIDs", mock.Anything, []int{1}).Return(map[int]bool{1: true}, nil).Twice()
	repo := mocks.NewOrderRepository(t)
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(&domain.Order{ID: 1}, nil).Once()
	repo.On("CreateOrder", mock.Anything, mock.Anything).Return(&domain.Order{ID: 2}, nil).Once()
	svc := service.NewOrderService(service.NewOrderValidator(products, "RU"), repo, nil)

	body := `{"firstname": "Ivan", "lastname": "Petrov", "phonenumber": "+79161234567",
		"address": "Moscow", "products": [{"product": 1}]}`

	first, err := svc.Submit(context.Background(), decodePayload(t, body))
	require.NoError(t, err)
	second, err := svc.Submit(context.Background(), decodePayload(t, body))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrderService_SubmitStopsOnValidationError(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	svc := service.NewOrderService(service.NewOrderValidator(mocks.NewProductRepository(t), "RU"), repo, nil)

	_, err := svc.Submit(context.Background(), decodePayload(t, `{"products": []}`))

	var verr service.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
}
