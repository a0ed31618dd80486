// Package queue turns the gateway's flat queued-transactions pages into
// the nested shape a queue view renders: same-nonce conflict groups,
// same-hash bulk groups, named sections and pending-action badge counts.
package queue

import (
	"safequeue-viz/internal/model"
	"safequeue-viz/utils"
)

// The guards below classify page entries and their nested unions. They
// are total: a nil item or an item of an unknown type fails every guard.

func IsTransactionListItem(item *model.TransactionListItem) bool {
	return item != nil && item.Type == model.TypeTransaction && item.Transaction != nil
}

func IsLabelListItem(item *model.TransactionListItem) bool {
	return item != nil && item.Type == model.TypeLabel
}

func IsConflictHeaderListItem(item *model.TransactionListItem) bool {
	return item != nil && item.Type == model.TypeConflictHeader
}

func IsDateLabel(item *model.TransactionListItem) bool {
	return item != nil && item.Type == model.TypeDateLabel
}

// IsKnownListItem reports whether the item matches any union variant at
// all. Unknown variants are skipped by every pass, but callers log them
// so upstream schema drift does not go unnoticed.
func IsKnownListItem(item *model.TransactionListItem) bool {
	return IsTransactionListItem(item) || IsLabelListItem(item) ||
		IsConflictHeaderListItem(item) || IsDateLabel(item)
}

func IsMultisigExecutionInfo(info *model.ExecutionInfo) bool {
	return info != nil && info.Type == model.ExecutionMultisig
}

func IsModuleExecutionInfo(info *model.ExecutionInfo) bool {
	return info != nil && info.Type == model.ExecutionModule
}

func IsTransferTxInfo(info *model.TransactionInfo) bool {
	return info != nil && info.Type == model.TxInfoTransfer
}

func IsSettingsChangeTxInfo(info *model.TransactionInfo) bool {
	return info != nil && info.Type == model.TxInfoSettingsChange
}

func IsCustomTxInfo(info *model.TransactionInfo) bool {
	return info != nil && info.Type == model.TxInfoCustom
}

func IsCreationTxInfo(info *model.TransactionInfo) bool {
	return info != nil && info.Type == model.TxInfoCreation
}

// IsMultisendTxInfo identifies a batched multi-call proposal
func IsMultisendTxInfo(info *model.TransactionInfo) bool {
	return IsCustomTxInfo(info) && info.MethodName == model.MethodMultiSend
}

// IsCancellationTxInfo identifies an on-chain rejection (a zero-value
// self-call proposed to burn a nonce)
func IsCancellationTxInfo(info *model.TransactionInfo) bool {
	return IsCustomTxInfo(info) && info.IsCancellation
}

// IsExecutable reports whether the given wallet can execute the proposal
// right now: either the confirmation threshold is already met, or the
// wallet's own missing signature is the last one needed.
func IsExecutable(tx *model.TransactionSummary, wallet string) bool {
	if tx == nil || !IsMultisigExecutionInfo(tx.ExecutionInfo) {
		return false
	}
	info := tx.ExecutionInfo
	if info.ConfirmationsSubmitted >= info.ConfirmationsRequired {
		return true
	}
	return info.ConfirmationsSubmitted == info.ConfirmationsRequired-1 &&
		utils.ContainsAddress(info.MissingSigners, wallet)
}

// IsSignable reports whether the wallet still owes a signature on the
// proposal.
func IsSignable(tx *model.TransactionSummary, wallet string) bool {
	if tx == nil || !IsMultisigExecutionInfo(tx.ExecutionInfo) {
		return false
	}
	return utils.ContainsAddress(tx.ExecutionInfo.MissingSigners, wallet)
}
