package messagepush

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/cketh-starter/ckusdc-depositor/workflow"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var walletAddr = common.HexToAddress("0x1111111111111111111111111111111111111111")

func depositEvent() workflow.Event {
	hash := common.HexToHash("0xabc")
	return workflow.Event{
		Operation: workflow.OpDeposit,
		Phase:     workflow.PhaseSubmitted,
		TxHash:    hash,
		Time:      time.UnixMilli(1700000000000),
		State: workflow.State{
			Status:         workflow.StatusAwaitingConfirmation,
			Generation:     2,
			DepositAddress: "0xdead",
			Deposit: &workflow.DepositTransaction{
				DepositIntent: workflow.DepositIntent{Amount: big.NewInt(100000000)},
				Hash:          hash,
				Status:        workflow.TxPending,
			},
		},
	}
}

func TestNewWorkflowUpdate(t *testing.T) {
	u := NewWorkflowUpdate(depositEvent())
	require.Equal(t, &WorkflowUpdate{
		Operation:      "deposit",
		Phase:          "submitted",
		Status:         "awaiting_confirmation",
		Generation:     2,
		TxHash:         common.HexToHash("0xabc").Hex(),
		DepositAddress: "0xdead",
		Amount:         "100000000",
		TxStatus:       "pending",
		Time:           1700000000000,
	}, u)

	failed := workflow.Event{
		Operation: workflow.OpApprove,
		Phase:     workflow.PhaseFailed,
		State: workflow.State{
			Status: workflow.StatusErrored,
			Err:    &workflow.Error{Kind: workflow.KindApprovalFailed, Detail: "approval not submitted"},
		},
	}
	u = NewWorkflowUpdate(failed)
	require.Equal(t, "approval_failed", u.ErrorKind)
	require.Equal(t, "approval failed: approval not submitted", u.ErrorMessage)
	require.Empty(t, u.TxHash)
	require.Empty(t, u.Amount)
}

func TestKafkaProducerPushWorkflowUpdate(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, mock.Close()) }()

	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "deposits" {
			return errors.New("unexpected topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != walletAddr.Hex() {
			return errors.New("unexpected key " + string(key))
		}
		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var pushed PushMessage
		if err := json.Unmarshal(value, &pushed); err != nil {
			return err
		}
		if pushed.BizCode != BizCodeDepositWorkflow || pushed.WalletAddress != walletAddr.Hex() || pushed.RequestID == "" {
			return errors.New("unexpected push message " + string(value))
		}
		var update WorkflowUpdate
		if err := json.Unmarshal([]byte(pushed.PushContent), &update); err != nil {
			return err
		}
		if update.Phase != "submitted" || update.Amount != "100000000" {
			return errors.New("unexpected update " + pushed.PushContent)
		}
		return nil
	})

	p := newKafkaProducer(mock, Config{Topic: "deposits"})
	NewWorkflowPusher(p, walletAddr).OnEvent(depositEvent())
}

func TestKafkaProducerConfiguredKey(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, mock.Close()) }()

	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != "fixed" {
			return errors.New("unexpected key " + string(key))
		}
		return nil
	})

	p := newKafkaProducer(mock, Config{Topic: "deposits", PushKey: "fixed", BizCode: "custom"})
	require.NoError(t, p.PushWorkflowUpdate(walletAddr.Hex(), NewWorkflowUpdate(depositEvent())))
}

func TestKafkaProducerSendError(t *testing.T) {
	mock := mocks.NewSyncProducer(t, nil)
	defer func() { require.NoError(t, mock.Close()) }()
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newKafkaProducer(mock, Config{Topic: "deposits"})
	err := p.Produce("hello")
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	// the pusher only logs the failure
	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	require.NotPanics(t, func() { NewWorkflowPusher(p, walletAddr).OnEvent(depositEvent()) })
}

func TestFakeProducer(t *testing.T) {
	p, err := NewKafkaProducer(Config{UseFakeProducer: true, Topic: "deposits"})
	require.NoError(t, err)

	pusher := NewWorkflowPusher(p, walletAddr)
	for i := 0; i < fakeMessageLimit+5; i++ {
		pusher.OnEvent(depositEvent())
	}
	require.NoError(t, p.Produce("other", WithTopic("other")))

	msgs := p.GetFakeMessages("deposits")
	require.Len(t, msgs, fakeMessageLimit)
	var pushed PushMessage
	require.NoError(t, json.Unmarshal([]byte(msgs[0]), &pushed))
	require.Equal(t, walletAddr.Hex(), pushed.WalletAddress)

	require.Empty(t, p.GetFakeMessages("deposits"))
	require.Equal(t, []string{"other"}, p.GetFakeMessages("other"))
	require.NoError(t, p.Close())
}

func TestNilUpdate(t *testing.T) {
	p, err := NewKafkaProducer(Config{UseFakeProducer: true})
	require.NoError(t, err)
	require.NoError(t, p.PushWorkflowUpdate(walletAddr.Hex(), nil))
	require.Empty(t, p.GetFakeMessages(""))
}
