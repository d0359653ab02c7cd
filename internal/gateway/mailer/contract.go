//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=mailer_test
package mailer

import (
	"context"

	"github.com/IBM/sarama"
)

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}

type promotionPusher interface {
	PushPromotion(ctx context.Context, driverID, messageType, regionName string, priorityScore int) error
}
