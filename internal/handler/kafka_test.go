package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	mocks "github.com/twosvc/notification-service/internal/handler/mocks"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestKafkaHandler(t *testing.T) (*kafkaHandler, *mocks.MockOrderNotifier) {
	notifier := mocks.NewMockOrderNotifier(t)
	h := &kafkaHandler{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validator.New(),
		notifier: notifier,
	}
	return h, notifier
}

func TestKafkaHandler_HandleEvent(t *testing.T) {
	testCases := []struct {
		name         string
		payload      string
		mockBehavior func(notifier *mocks.MockOrderNotifier)
		wantErr      bool
	}{
		{
			name:    "order processed",
			payload: `{"type": "order_processed", "order_id": 42}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {
				notifier.EXPECT().
					SendOrderNotificationByOrderID(mock.Anything, int64(42)).
					Return("Email sent to alice at a@x", nil).Once()
			},
		},
		{
			name:    "status changed",
			payload: `{"type": "status_changed", "order_id": 42, "new_status": 3}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {
				notifier.EXPECT().
					SendOrderStatusChangeNotification(mock.Anything, int64(42), 3).
					Return("Email sent to alice at a@x", nil).Once()
			},
		},
		{
			name:    "order details",
			payload: `{"type": "order_details", "order_id": 42}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {
				notifier.EXPECT().
					SendOrderDetailsNotification(mock.Anything, int64(42)).
					Return("Email sent to alice at a@x", nil).Once()
			},
		},
		{
			name:    "user message",
			payload: `{"type": "user_message", "user_id": 7, "message": "hello"}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {
				notifier.EXPECT().
					SendBulkNotification(mock.Anything, int64(7), "hello").
					Return("Email sent to alice at a@x", nil).Once()
			},
		},
		{
			name:         "unknown event type",
			payload:      `{"type": "unknown", "order_id": 42}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {},
			wantErr:      true,
		},
		{
			name:         "broken payload",
			payload:      `{`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {},
			wantErr:      true,
		},
		{
			name:    "notifier error",
			payload: `{"type": "order_processed", "order_id": 42}`,
			mockBehavior: func(notifier *mocks.MockOrderNotifier) {
				notifier.EXPECT().
					SendOrderNotificationByOrderID(mock.Anything, int64(42)).
					Return("", errors.New("rpc error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, notifier := newTestKafkaHandler(t)
			tc.mockBehavior(notifier)

			err := h.handleEvent(context.Background(), kafka.Message{Value: []byte(tc.payload)})
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
