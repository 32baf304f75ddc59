package g_error

import "errors"

var (
	// 牌面校验
	ErrInvalidCardCount = errors.New("hand must contain exactly 5 cards")
	ErrInvalidCard      = errors.New("invalid card rank or suit")
	ErrDuplicateCard    = errors.New("duplicate card in hand")
	ErrInvalidHoleCards = errors.New("each side must hold exactly 2 cards")
	ErrInvalidCommunity = errors.New("community must contain exactly 3 cards")

	// 赛程配置校验
	ErrCatalogGroupTooSmall    = errors.New("outcome group needs at least 2 setups")
	ErrCatalogUnbalanced       = errors.New("catalog size must be a multiple of balanced cycles")
	ErrCatalogDeclaredMismatch = errors.New("declared category or outcome disagrees with the cards")

	// 对局
	ErrGameNotRunning = errors.New("game not running")
	ErrNotYourTurn    = errors.New("not waiting for a bet now")
	ErrWrongRound     = errors.New("action round doesn't match current round")
	ErrNotEnoughChips = errors.New("not enough chips")
	ErrUnknownActor   = errors.New("unknown actor id")
)
