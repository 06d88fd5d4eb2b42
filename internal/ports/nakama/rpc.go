package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"remi/internal/app"
	"remi/internal/domain"
)

// RegisterRPCs registers the hand analysis endpoints backed by svc.
func RegisterRPCs(initializer runtime.Initializer, svc *app.Service) error {
	h := &rpcHandlers{svc: svc}
	if err := initializer.RegisterRpc(RpcAnalyzeHand, h.analyzeHand); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcDealHand, h.dealHand); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcCompareHands, h.compareHands)
}

type rpcHandlers struct {
	svc *app.Service
}

// analyzeHand handles {"hand": "Ac 2c 3c", "seen": ["Kd"]}.
func (h *rpcHandlers) analyzeHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req analyzeRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	hand, err := domain.ParseHand(req.Hand)
	if err != nil {
		return "", runtimeError(logger, RpcAnalyzeHand, err)
	}
	seen, err := cardsFromTokens(req.Seen)
	if err != nil {
		return "", runtimeError(logger, RpcAnalyzeHand, err)
	}

	report, err := h.svc.Analyze(app.AnalyzeRequest{Hand: hand, Seen: seen})
	if err != nil {
		return "", runtimeError(logger, RpcAnalyzeHand, err)
	}
	return encode(logger, RpcAnalyzeHand, reportToResponse(report, h.svc.Tuning()))
}

// dealHand handles {"size": 14}; an empty payload deals the configured size.
func (h *rpcHandlers) dealHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req dealRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("Invalid payload", codeInvalidArgument)
		}
	}
	report, err := h.svc.Deal(req.Size)
	if err != nil {
		return "", runtimeError(logger, RpcDealHand, err)
	}
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	logger.Debug("%s [User:%s]: dealt %s, score %.4f", RpcDealHand, userID, report.Hand.String(), report.Score)
	return encode(logger, RpcDealHand, reportToResponse(report, h.svc.Tuning()))
}

// compareHands handles {"first": "Ac 2c 3c", "second": "5d 5h 5s"}.
func (h *rpcHandlers) compareHands(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req compareRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	first, err := domain.ParseHand(req.First)
	if err != nil {
		return "", runtimeError(logger, RpcCompareHands, err)
	}
	second, err := domain.ParseHand(req.Second)
	if err != nil {
		return "", runtimeError(logger, RpcCompareHands, err)
	}

	cmp, err := h.svc.Compare(first, second)
	if err != nil {
		return "", runtimeError(logger, RpcCompareHands, err)
	}
	tuning := h.svc.Tuning()
	return encode(logger, RpcCompareHands, CompareResponse{
		First:  reportToResponse(cmp.First, tuning),
		Second: reportToResponse(cmp.Second, tuning),
		Diff:   cmp.Diff,
	})
}

// runtimeError maps domain and service failures caused by the request to
// INVALID_ARGUMENT and everything else to INTERNAL.
func runtimeError(logger runtime.Logger, rpc string, err error) error {
	switch {
	case errors.Is(err, domain.ErrParse),
		errors.Is(err, domain.ErrCapacity),
		errors.Is(err, domain.ErrCardNotContained),
		errors.Is(err, domain.ErrGroupIndex),
		errors.Is(err, app.ErrEmptyHand),
		errors.Is(err, app.ErrInvalidDealSize),
		errors.Is(err, app.ErrHandSizeMismatch):
		return runtime.NewError(err.Error(), codeInvalidArgument)
	}
	logger.Error("%s: %v", rpc, err)
	return runtime.NewError("Internal error", codeInternal)
}

func encode(logger runtime.Logger, rpc string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		logger.Error("%s: failed to marshal response: %v", rpc, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(b), nil
}
