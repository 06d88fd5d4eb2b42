package nakama

const (
	// RpcAnalyzeHand scores a client-supplied hand against the deck minus seen cards.
	RpcAnalyzeHand = "remi_analyze_hand"
	// RpcDealHand deals a random hand from a fresh deck and analyzes it.
	RpcDealHand = "remi_deal_hand"
	// RpcCompareHands scores two equal-size hands against a shared deck.
	RpcCompareHands = "remi_compare_hands"
)

// Runtime env keys.
const (
	EnvConfigPath = "remi_config"
)

// gRPC status codes used with runtime.NewError.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
