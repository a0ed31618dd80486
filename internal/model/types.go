package model

// ListItemType discriminates the entries of a queued-transactions page
type ListItemType string

const (
	TypeTransaction    ListItemType = "TRANSACTION"
	TypeLabel          ListItemType = "LABEL"
	TypeConflictHeader ListItemType = "CONFLICT_HEADER"
	TypeDateLabel      ListItemType = "DATE_LABEL"
)

// ConflictType marks a transaction's position inside a same-nonce run
type ConflictType string

const (
	ConflictNone    ConflictType = "None"
	ConflictHasNext ConflictType = "HasNext"
	ConflictEnd     ConflictType = "End"
)

// LabelValue separates the queue into its two segments
type LabelValue string

const (
	LabelNext   LabelValue = "Next"
	LabelQueued LabelValue = "Queued"
)

// TransactionStatus is the gateway's lifecycle status for a proposal
type TransactionStatus string

const (
	StatusAwaitingConfirmations TransactionStatus = "AWAITING_CONFIRMATIONS"
	StatusAwaitingExecution     TransactionStatus = "AWAITING_EXECUTION"
	StatusCancelled             TransactionStatus = "CANCELLED"
	StatusFailed                TransactionStatus = "FAILED"
	StatusSuccess               TransactionStatus = "SUCCESS"
)

// ExecutionInfoType discriminates how a proposal gets executed
type ExecutionInfoType string

const (
	ExecutionMultisig ExecutionInfoType = "MULTISIG"
	ExecutionModule   ExecutionInfoType = "MODULE"
)

// TxInfoType discriminates what a proposal does
type TxInfoType string

const (
	TxInfoTransfer       TxInfoType = "Transfer"
	TxInfoSettingsChange TxInfoType = "SettingsChange"
	TxInfoCustom         TxInfoType = "Custom"
	TxInfoCreation       TxInfoType = "Creation"
)

// MethodMultiSend is the decoded method name of a batched call
const MethodMultiSend = "multiSend"

// AddressEx is the gateway's enriched address record
type AddressEx struct {
	Value   string `json:"value"`
	Name    string `json:"name,omitempty"`
	LogoURI string `json:"logoUri,omitempty"`
}

// TransactionListItem is one entry of a queued-transactions page. The
// gateway emits a tagged union; Type selects which of the variant fields
// below are populated.
type TransactionListItem struct {
	Type ListItemType `json:"type"`

	// TRANSACTION
	Transaction  *TransactionSummary `json:"transaction,omitempty"`
	ConflictType ConflictType        `json:"conflictType,omitempty"`

	// LABEL
	Label LabelValue `json:"label,omitempty"`

	// CONFLICT_HEADER
	Nonce uint64 `json:"nonce,omitempty"`

	// DATE_LABEL
	Timestamp int64 `json:"timestamp,omitempty"`
}

// TransactionSummary identifies one proposed or executed multisig action
type TransactionSummary struct {
	ID            string            `json:"id"`
	Timestamp     int64             `json:"timestamp"`
	TxStatus      TransactionStatus `json:"txStatus"`
	TxInfo        TransactionInfo   `json:"txInfo"`
	ExecutionInfo *ExecutionInfo    `json:"executionInfo,omitempty"`
	// TxHash is set once mined and is shared by batched proposals
	TxHash string `json:"txHash,omitempty"`
}

// ExecutionInfo describes how (and how far along) a proposal executes
type ExecutionInfo struct {
	Type ExecutionInfoType `json:"type"`

	// MULTISIG
	Nonce                  uint64      `json:"nonce"`
	ConfirmationsRequired  int         `json:"confirmationsRequired,omitempty"`
	ConfirmationsSubmitted int         `json:"confirmationsSubmitted,omitempty"`
	MissingSigners         []AddressEx `json:"missingSigners,omitempty"`

	// MODULE
	Address *AddressEx `json:"address,omitempty"`
}

// TransactionInfo describes what a proposal does. Type selects the
// populated variant fields.
type TransactionInfo struct {
	Type TxInfoType `json:"type"`

	// Transfer
	Sender    *AddressEx `json:"sender,omitempty"`
	Recipient *AddressEx `json:"recipient,omitempty"`
	Direction string     `json:"direction,omitempty"`

	// Custom
	To             *AddressEx `json:"to,omitempty"`
	DataSize       string     `json:"dataSize,omitempty"`
	Value          string     `json:"value,omitempty"`
	MethodName     string     `json:"methodName,omitempty"`
	ActionCount    *int       `json:"actionCount,omitempty"`
	IsCancellation bool       `json:"isCancellation,omitempty"`

	// SettingsChange
	DataDecoded *DataDecoded `json:"dataDecoded,omitempty"`

	// Creation
	Creator *AddressEx `json:"creator,omitempty"`
	Factory *AddressEx `json:"factory,omitempty"`
}

// DataDecoded is the gateway's decoded calldata summary
type DataDecoded struct {
	Method     string         `json:"method"`
	Parameters []DecodedParam `json:"parameters,omitempty"`
}

type DecodedParam struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// TransactionListPage is one page of the gateway's queued-transactions
// endpoint. Next and Previous are opaque cursor URLs.
type TransactionListPage struct {
	Next     string                `json:"next,omitempty"`
	Previous string                `json:"previous,omitempty"`
	Results  []TransactionListItem `json:"results"`
}

// SafeInfo is the subset of the gateway's safe record the service needs
type SafeInfo struct {
	Address   AddressEx   `json:"address"`
	ChainID   string      `json:"chainId"`
	Nonce     uint64      `json:"nonce"`
	Threshold int         `json:"threshold"`
	Owners    []AddressEx `json:"owners"`
}
