// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: spendsync/v1/spendsync.proto

package spendsyncv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RunSyncRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Incremental   bool                   `protobuf:"varint,1,opt,name=incremental,proto3" json:"incremental,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunSyncRequest) Reset() {
	*x = RunSyncRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunSyncRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunSyncRequest) ProtoMessage() {}

func (x *RunSyncRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunSyncRequest.ProtoReflect.Descriptor instead.
func (*RunSyncRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{0}
}

func (x *RunSyncRequest) GetIncremental() bool {
	if x != nil {
		return x.Incremental
	}
	return false
}

type RunSyncResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Summary       *SyncSummary           `protobuf:"bytes,1,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunSyncResponse) Reset() {
	*x = RunSyncResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunSyncResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunSyncResponse) ProtoMessage() {}

func (x *RunSyncResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunSyncResponse.ProtoReflect.Descriptor instead.
func (*RunSyncResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{1}
}

func (x *RunSyncResponse) GetSummary() *SyncSummary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type SyncSummary struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	RunId              string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	MessagesRead       int32                  `protobuf:"varint,2,opt,name=messages_read,json=messagesRead,proto3" json:"messages_read,omitempty"`
	Transactional      int32                  `protobuf:"varint,3,opt,name=transactional,proto3" json:"transactional,omitempty"`
	Saved              int32                  `protobuf:"varint,4,opt,name=saved,proto3" json:"saved,omitempty"`
	Duplicates         int32                  `protobuf:"varint,5,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	ExtractionFailures int32                  `protobuf:"varint,6,opt,name=extraction_failures,json=extractionFailures,proto3" json:"extraction_failures,omitempty"`
	CompletedAt        string                 `protobuf:"bytes,7,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	Incremental        bool                   `protobuf:"varint,8,opt,name=incremental,proto3" json:"incremental,omitempty"`
	Failed             bool                   `protobuf:"varint,9,opt,name=failed,proto3" json:"failed,omitempty"`
	Error              string                 `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *SyncSummary) Reset() {
	*x = SyncSummary{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncSummary) ProtoMessage() {}

func (x *SyncSummary) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncSummary.ProtoReflect.Descriptor instead.
func (*SyncSummary) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{2}
}

func (x *SyncSummary) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *SyncSummary) GetMessagesRead() int32 {
	if x != nil {
		return x.MessagesRead
	}
	return 0
}

func (x *SyncSummary) GetTransactional() int32 {
	if x != nil {
		return x.Transactional
	}
	return 0
}

func (x *SyncSummary) GetSaved() int32 {
	if x != nil {
		return x.Saved
	}
	return 0
}

func (x *SyncSummary) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *SyncSummary) GetExtractionFailures() int32 {
	if x != nil {
		return x.ExtractionFailures
	}
	return 0
}

func (x *SyncSummary) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *SyncSummary) GetIncremental() bool {
	if x != nil {
		return x.Incremental
	}
	return false
}

func (x *SyncSummary) GetFailed() bool {
	if x != nil {
		return x.Failed
	}
	return false
}

func (x *SyncSummary) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type GetSyncStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSyncStatusRequest) Reset() {
	*x = GetSyncStatusRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSyncStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSyncStatusRequest) ProtoMessage() {}

func (x *GetSyncStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSyncStatusRequest.ProtoReflect.Descriptor instead.
func (*GetSyncStatusRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{3}
}

type GetSyncStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	LastRun       *SyncSummary           `protobuf:"bytes,2,opt,name=last_run,json=lastRun,proto3" json:"last_run,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSyncStatusResponse) Reset() {
	*x = GetSyncStatusResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSyncStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSyncStatusResponse) ProtoMessage() {}

func (x *GetSyncStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSyncStatusResponse.ProtoReflect.Descriptor instead.
func (*GetSyncStatusResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{4}
}

func (x *GetSyncStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetSyncStatusResponse) GetLastRun() *SyncSummary {
	if x != nil {
		return x.LastRun
	}
	return nil
}

type ResetSyncCursorRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetSyncCursorRequest) Reset() {
	*x = ResetSyncCursorRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetSyncCursorRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetSyncCursorRequest) ProtoMessage() {}

func (x *ResetSyncCursorRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetSyncCursorRequest.ProtoReflect.Descriptor instead.
func (*ResetSyncCursorRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{5}
}

type ResetSyncCursorResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetSyncCursorResponse) Reset() {
	*x = ResetSyncCursorResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetSyncCursorResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetSyncCursorResponse) ProtoMessage() {}

func (x *ResetSyncCursorResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetSyncCursorResponse.ProtoReflect.Descriptor instead.
func (*ResetSyncCursorResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{6}
}

type Transaction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Amount        string                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Direction     string                 `protobuf:"bytes,3,opt,name=direction,proto3" json:"direction,omitempty"`
	Merchant      string                 `protobuf:"bytes,4,opt,name=merchant,proto3" json:"merchant,omitempty"`
	AccountRef    string                 `protobuf:"bytes,5,opt,name=account_ref,json=accountRef,proto3" json:"account_ref,omitempty"`
	Reference     string                 `protobuf:"bytes,6,opt,name=reference,proto3" json:"reference,omitempty"`
	TxDate        string                 `protobuf:"bytes,7,opt,name=tx_date,json=txDate,proto3" json:"tx_date,omitempty"`
	ReceivedAt    string                 `protobuf:"bytes,8,opt,name=received_at,json=receivedAt,proto3" json:"received_at,omitempty"`
	Sender        string                 `protobuf:"bytes,9,opt,name=sender,proto3" json:"sender,omitempty"`
	BalanceAfter  string                 `protobuf:"bytes,10,opt,name=balance_after,json=balanceAfter,proto3" json:"balance_after,omitempty"`
	Category      string                 `protobuf:"bytes,11,opt,name=category,proto3" json:"category,omitempty"`
	RawBody       string                 `protobuf:"bytes,12,opt,name=raw_body,json=rawBody,proto3" json:"raw_body,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Transaction) Reset() {
	*x = Transaction{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Transaction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Transaction) ProtoMessage() {}

func (x *Transaction) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Transaction.ProtoReflect.Descriptor instead.
func (*Transaction) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{7}
}

func (x *Transaction) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Transaction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Transaction) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *Transaction) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

func (x *Transaction) GetAccountRef() string {
	if x != nil {
		return x.AccountRef
	}
	return ""
}

func (x *Transaction) GetReference() string {
	if x != nil {
		return x.Reference
	}
	return ""
}

func (x *Transaction) GetTxDate() string {
	if x != nil {
		return x.TxDate
	}
	return ""
}

func (x *Transaction) GetReceivedAt() string {
	if x != nil {
		return x.ReceivedAt
	}
	return ""
}

func (x *Transaction) GetSender() string {
	if x != nil {
		return x.Sender
	}
	return ""
}

func (x *Transaction) GetBalanceAfter() string {
	if x != nil {
		return x.BalanceAfter
	}
	return ""
}

func (x *Transaction) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Transaction) GetRawBody() string {
	if x != nil {
		return x.RawBody
	}
	return ""
}

type ListTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, inclusive
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, inclusive
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Direction     string                 `protobuf:"bytes,4,opt,name=direction,proto3" json:"direction,omitempty"`
	Limit         int32                  `protobuf:"varint,5,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsRequest) Reset() {
	*x = ListTransactionsRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsRequest) ProtoMessage() {}

func (x *ListTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ListTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{8}
}

func (x *ListTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListTransactionsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListTransactionsRequest) GetDirection() string {
	if x != nil {
		return x.Direction
	}
	return ""
}

func (x *ListTransactionsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transactions  []*Transaction         `protobuf:"bytes,1,rep,name=transactions,proto3" json:"transactions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTransactionsResponse) Reset() {
	*x = ListTransactionsResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTransactionsResponse) ProtoMessage() {}

func (x *ListTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ListTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{9}
}

func (x *ListTransactionsResponse) GetTransactions() []*Transaction {
	if x != nil {
		return x.Transactions
	}
	return nil
}

type GetTransactionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTransactionRequest) Reset() {
	*x = GetTransactionRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTransactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTransactionRequest) ProtoMessage() {}

func (x *GetTransactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTransactionRequest.ProtoReflect.Descriptor instead.
func (*GetTransactionRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{10}
}

func (x *GetTransactionRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type GetTransactionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Transaction   *Transaction           `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTransactionResponse) Reset() {
	*x = GetTransactionResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTransactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTransactionResponse) ProtoMessage() {}

func (x *GetTransactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTransactionResponse.ProtoReflect.Descriptor instead.
func (*GetTransactionResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{11}
}

func (x *GetTransactionResponse) GetTransaction() *Transaction {
	if x != nil {
		return x.Transaction
	}
	return nil
}

type DeleteTransactionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTransactionRequest) Reset() {
	*x = DeleteTransactionRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTransactionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTransactionRequest) ProtoMessage() {}

func (x *DeleteTransactionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTransactionRequest.ProtoReflect.Descriptor instead.
func (*DeleteTransactionRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteTransactionRequest) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

type DeleteTransactionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteTransactionResponse) Reset() {
	*x = DeleteTransactionResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteTransactionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteTransactionResponse) ProtoMessage() {}

func (x *DeleteTransactionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteTransactionResponse.ProtoReflect.Descriptor instead.
func (*DeleteTransactionResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{13}
}

type SetCategoryOverrideRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TransactionId int64                  `protobuf:"varint,1,opt,name=transaction_id,json=transactionId,proto3" json:"transaction_id,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	// When set, also learns a merchant mapping so future transactions from
	// this merchant pick up the category.
	Merchant      string `protobuf:"bytes,3,opt,name=merchant,proto3" json:"merchant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCategoryOverrideRequest) Reset() {
	*x = SetCategoryOverrideRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCategoryOverrideRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCategoryOverrideRequest) ProtoMessage() {}

func (x *SetCategoryOverrideRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCategoryOverrideRequest.ProtoReflect.Descriptor instead.
func (*SetCategoryOverrideRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{14}
}

func (x *SetCategoryOverrideRequest) GetTransactionId() int64 {
	if x != nil {
		return x.TransactionId
	}
	return 0
}

func (x *SetCategoryOverrideRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *SetCategoryOverrideRequest) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

type SetCategoryOverrideResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCategoryOverrideResponse) Reset() {
	*x = SetCategoryOverrideResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCategoryOverrideResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCategoryOverrideResponse) ProtoMessage() {}

func (x *SetCategoryOverrideResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCategoryOverrideResponse.ProtoReflect.Descriptor instead.
func (*SetCategoryOverrideResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{15}
}

type LearnMerchantMappingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Merchant      string                 `protobuf:"bytes,1,opt,name=merchant,proto3" json:"merchant,omitempty"`
	Category      string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LearnMerchantMappingRequest) Reset() {
	*x = LearnMerchantMappingRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnMerchantMappingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnMerchantMappingRequest) ProtoMessage() {}

func (x *LearnMerchantMappingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnMerchantMappingRequest.ProtoReflect.Descriptor instead.
func (*LearnMerchantMappingRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{16}
}

func (x *LearnMerchantMappingRequest) GetMerchant() string {
	if x != nil {
		return x.Merchant
	}
	return ""
}

func (x *LearnMerchantMappingRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type LearnMerchantMappingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LearnMerchantMappingResponse) Reset() {
	*x = LearnMerchantMappingResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LearnMerchantMappingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LearnMerchantMappingResponse) ProtoMessage() {}

func (x *LearnMerchantMappingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LearnMerchantMappingResponse.ProtoReflect.Descriptor instead.
func (*LearnMerchantMappingResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{17}
}

type ResetMerchantMappingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetMerchantMappingsRequest) Reset() {
	*x = ResetMerchantMappingsRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetMerchantMappingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetMerchantMappingsRequest) ProtoMessage() {}

func (x *ResetMerchantMappingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetMerchantMappingsRequest.ProtoReflect.Descriptor instead.
func (*ResetMerchantMappingsRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{18}
}

type ResetMerchantMappingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Removed       int32                  `protobuf:"varint,1,opt,name=removed,proto3" json:"removed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResetMerchantMappingsResponse) Reset() {
	*x = ResetMerchantMappingsResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResetMerchantMappingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResetMerchantMappingsResponse) ProtoMessage() {}

func (x *ResetMerchantMappingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResetMerchantMappingsResponse.ProtoReflect.Descriptor instead.
func (*ResetMerchantMappingsResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{19}
}

func (x *ResetMerchantMappingsResponse) GetRemoved() int32 {
	if x != nil {
		return x.Removed
	}
	return 0
}

type ExportTransactionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsRequest) Reset() {
	*x = ExportTransactionsRequest{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsRequest) ProtoMessage() {}

func (x *ExportTransactionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsRequest.ProtoReflect.Descriptor instead.
func (*ExportTransactionsRequest) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{20}
}

func (x *ExportTransactionsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ExportTransactionsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ExportTransactionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportTransactionsResponse) Reset() {
	*x = ExportTransactionsResponse{}
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportTransactionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportTransactionsResponse) ProtoMessage() {}

func (x *ExportTransactionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_spendsync_v1_spendsync_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportTransactionsResponse.ProtoReflect.Descriptor instead.
func (*ExportTransactionsResponse) Descriptor() ([]byte, []int) {
	return file_spendsync_v1_spendsync_proto_rawDescGZIP(), []int{21}
}

func (x *ExportTransactionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_spendsync_v1_spendsync_proto protoreflect.FileDescriptor

const file_spendsync_v1_spendsync_proto_rawDesc = "" +
	"\n" +
	"\x1cspendsync/v1/spendsync.proto\x12\fspendsync.v1\"2\n" +
	"\x0eRunSyncRequest\x12 \n" +
	"\vincremental\x18\x01 \x01(\bR\vincremental\"F\n" +
	"\x0fRunSyncResponse\x123\n" +
	"\asummary\x18\x01 \x01(\v2\x19.spendsync.v1.SyncSummaryR\asummary\"\xc9\x02\n" +
	"\vSyncSummary\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12#\n" +
	"\rmessages_read\x18\x02 \x01(\x05R\fmessagesRead\x12$\n" +
	"\rtransactional\x18\x03 \x01(\x05R\rtransactional\x12\x14\n" +
	"\x05saved\x18\x04 \x01(\x05R\x05saved\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x05 \x01(\x05R\n" +
	"duplicates\x12/\n" +
	"\x13extraction_failures\x18\x06 \x01(\x05R\x12extractionFailures\x12!\n" +
	"\fcompleted_at\x18\a \x01(\tR\vcompletedAt\x12 \n" +
	"\vincremental\x18\b \x01(\bR\vincremental\x12\x16\n" +
	"\x06failed\x18\t \x01(\bR\x06failed\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\"\x16\n" +
	"\x14GetSyncStatusRequest\"e\n" +
	"\x15GetSyncStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x124\n" +
	"\blast_run\x18\x02 \x01(\v2\x19.spendsync.v1.SyncSummaryR\alastRun\"\x18\n" +
	"\x16ResetSyncCursorRequest\"\x19\n" +
	"\x17ResetSyncCursorResponse\"\xdc\x02\n" +
	"\vTransaction\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\tR\x06amount\x12\x1c\n" +
	"\tdirection\x18\x03 \x01(\tR\tdirection\x12\x1a\n" +
	"\bmerchant\x18\x04 \x01(\tR\bmerchant\x12\x1f\n" +
	"\vaccount_ref\x18\x05 \x01(\tR\n" +
	"accountRef\x12\x1c\n" +
	"\treference\x18\x06 \x01(\tR\treference\x12\x17\n" +
	"\atx_date\x18\a \x01(\tR\x06txDate\x12\x1f\n" +
	"\vreceived_at\x18\b \x01(\tR\n" +
	"receivedAt\x12\x16\n" +
	"\x06sender\x18\t \x01(\tR\x06sender\x12#\n" +
	"\rbalance_after\x18\n" +
	" \x01(\tR\fbalanceAfter\x12\x1a\n" +
	"\bcategory\x18\v \x01(\tR\bcategory\x12\x19\n" +
	"\braw_body\x18\f \x01(\tR\arawBody\"\x9f\x01\n" +
	"\x17ListTransactionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x1c\n" +
	"\tdirection\x18\x04 \x01(\tR\tdirection\x12\x14\n" +
	"\x05limit\x18\x05 \x01(\x05R\x05limit\"Y\n" +
	"\x18ListTransactionsResponse\x12=\n" +
	"\ftransactions\x18\x01 \x03(\v2\x19.spendsync.v1.TransactionR\ftransactions\"'\n" +
	"\x15GetTransactionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"U\n" +
	"\x16GetTransactionResponse\x12;\n" +
	"\vtransaction\x18\x01 \x01(\v2\x19.spendsync.v1.TransactionR\vtransaction\"*\n" +
	"\x18DeleteTransactionRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\"\x1b\n" +
	"\x19DeleteTransactionResponse\"{\n" +
	"\x1aSetCategoryOverrideRequest\x12%\n" +
	"\x0etransaction_id\x18\x01 \x01(\x03R\rtransactionId\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1a\n" +
	"\bmerchant\x18\x03 \x01(\tR\bmerchant\"\x1d\n" +
	"\x1bSetCategoryOverrideResponse\"U\n" +
	"\x1bLearnMerchantMappingRequest\x12\x1a\n" +
	"\bmerchant\x18\x01 \x01(\tR\bmerchant\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\"\x1e\n" +
	"\x1cLearnMerchantMappingResponse\"\x1e\n" +
	"\x1cResetMerchantMappingsRequest\"9\n" +
	"\x1dResetMerchantMappingsResponse\x12\x18\n" +
	"\aremoved\x18\x01 \x01(\x05R\aremoved\"m\n" +
	"\x19ExportTransactionsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\"0\n" +
	"\x1aExportTransactionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x8f\x02\n" +
	"\vSyncService\x12F\n" +
	"\aRunSync\x12\x1c.spendsync.v1.RunSyncRequest\x1a\x1d.spendsync.v1.RunSyncResponse\x12X\n" +
	"\rGetSyncStatus\x12\".spendsync.v1.GetSyncStatusRequest\x1a#.spendsync.v1.GetSyncStatusResponse\x12^\n" +
	"\x0fResetSyncCursor\x12$.spendsync.v1.ResetSyncCursorRequest\x1a%.spendsync.v1.ResetSyncCursorResponse2\xf1\x05\n" +
	"\x13TransactionsService\x12a\n" +
	"\x10ListTransactions\x12%.spendsync.v1.ListTransactionsRequest\x1a&.spendsync.v1.ListTransactionsResponse\x12[\n" +
	"\x0eGetTransaction\x12#.spendsync.v1.GetTransactionRequest\x1a$.spendsync.v1.GetTransactionResponse\x12d\n" +
	"\x11DeleteTransaction\x12&.spendsync.v1.DeleteTransactionRequest\x1a'.spendsync.v1.DeleteTransactionResponse\x12j\n" +
	"\x13SetCategoryOverride\x12(.spendsync.v1.SetCategoryOverrideRequest\x1a).spendsync.v1.SetCategoryOverrideResponse\x12m\n" +
	"\x14LearnMerchantMapping\x12).spendsync.v1.LearnMerchantMappingRequest\x1a*.spendsync.v1.LearnMerchantMappingResponse\x12p\n" +
	"\x15ResetMerchantMappings\x12*.spendsync.v1.ResetMerchantMappingsRequest\x1a+.spendsync.v1.ResetMerchantMappingsResponse\x12g\n" +
	"\x12ExportTransactions\x12'.spendsync.v1.ExportTransactionsRequest\x1a(.spendsync.v1.ExportTransactionsResponseBHZFgithub.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1;spendsyncv1b\x06proto3"

var (
	file_spendsync_v1_spendsync_proto_rawDescOnce sync.Once
	file_spendsync_v1_spendsync_proto_rawDescData []byte
)

func file_spendsync_v1_spendsync_proto_rawDescGZIP() []byte {
	file_spendsync_v1_spendsync_proto_rawDescOnce.Do(func() {
		file_spendsync_v1_spendsync_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_spendsync_v1_spendsync_proto_rawDesc), len(file_spendsync_v1_spendsync_proto_rawDesc)))
	})
	return file_spendsync_v1_spendsync_proto_rawDescData
}

var file_spendsync_v1_spendsync_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_spendsync_v1_spendsync_proto_goTypes = []any{
	(*RunSyncRequest)(nil),                // 0: spendsync.v1.RunSyncRequest
	(*RunSyncResponse)(nil),               // 1: spendsync.v1.RunSyncResponse
	(*SyncSummary)(nil),                   // 2: spendsync.v1.SyncSummary
	(*GetSyncStatusRequest)(nil),          // 3: spendsync.v1.GetSyncStatusRequest
	(*GetSyncStatusResponse)(nil),         // 4: spendsync.v1.GetSyncStatusResponse
	(*ResetSyncCursorRequest)(nil),        // 5: spendsync.v1.ResetSyncCursorRequest
	(*ResetSyncCursorResponse)(nil),       // 6: spendsync.v1.ResetSyncCursorResponse
	(*Transaction)(nil),                   // 7: spendsync.v1.Transaction
	(*ListTransactionsRequest)(nil),       // 8: spendsync.v1.ListTransactionsRequest
	(*ListTransactionsResponse)(nil),      // 9: spendsync.v1.ListTransactionsResponse
	(*GetTransactionRequest)(nil),         // 10: spendsync.v1.GetTransactionRequest
	(*GetTransactionResponse)(nil),        // 11: spendsync.v1.GetTransactionResponse
	(*DeleteTransactionRequest)(nil),      // 12: spendsync.v1.DeleteTransactionRequest
	(*DeleteTransactionResponse)(nil),     // 13: spendsync.v1.DeleteTransactionResponse
	(*SetCategoryOverrideRequest)(nil),    // 14: spendsync.v1.SetCategoryOverrideRequest
	(*SetCategoryOverrideResponse)(nil),   // 15: spendsync.v1.SetCategoryOverrideResponse
	(*LearnMerchantMappingRequest)(nil),   // 16: spendsync.v1.LearnMerchantMappingRequest
	(*LearnMerchantMappingResponse)(nil),  // 17: spendsync.v1.LearnMerchantMappingResponse
	(*ResetMerchantMappingsRequest)(nil),  // 18: spendsync.v1.ResetMerchantMappingsRequest
	(*ResetMerchantMappingsResponse)(nil), // 19: spendsync.v1.ResetMerchantMappingsResponse
	(*ExportTransactionsRequest)(nil),     // 20: spendsync.v1.ExportTransactionsRequest
	(*ExportTransactionsResponse)(nil),    // 21: spendsync.v1.ExportTransactionsResponse
}
var file_spendsync_v1_spendsync_proto_depIdxs = []int32{
	2,  // 0: spendsync.v1.RunSyncResponse.summary:type_name -> spendsync.v1.SyncSummary
	2,  // 1: spendsync.v1.GetSyncStatusResponse.last_run:type_name -> spendsync.v1.SyncSummary
	7,  // 2: spendsync.v1.ListTransactionsResponse.transactions:type_name -> spendsync.v1.Transaction
	7,  // 3: spendsync.v1.GetTransactionResponse.transaction:type_name -> spendsync.v1.Transaction
	0,  // 4: spendsync.v1.SyncService.RunSync:input_type -> spendsync.v1.RunSyncRequest
	3,  // 5: spendsync.v1.SyncService.GetSyncStatus:input_type -> spendsync.v1.GetSyncStatusRequest
	5,  // 6: spendsync.v1.SyncService.ResetSyncCursor:input_type -> spendsync.v1.ResetSyncCursorRequest
	8,  // 7: spendsync.v1.TransactionsService.ListTransactions:input_type -> spendsync.v1.ListTransactionsRequest
	10, // 8: spendsync.v1.TransactionsService.GetTransaction:input_type -> spendsync.v1.GetTransactionRequest
	12, // 9: spendsync.v1.TransactionsService.DeleteTransaction:input_type -> spendsync.v1.DeleteTransactionRequest
	14, // 10: spendsync.v1.TransactionsService.SetCategoryOverride:input_type -> spendsync.v1.SetCategoryOverrideRequest
	16, // 11: spendsync.v1.TransactionsService.LearnMerchantMapping:input_type -> spendsync.v1.LearnMerchantMappingRequest
	18, // 12: spendsync.v1.TransactionsService.ResetMerchantMappings:input_type -> spendsync.v1.ResetMerchantMappingsRequest
	20, // 13: spendsync.v1.TransactionsService.ExportTransactions:input_type -> spendsync.v1.ExportTransactionsRequest
	1,  // 14: spendsync.v1.SyncService.RunSync:output_type -> spendsync.v1.RunSyncResponse
	4,  // 15: spendsync.v1.SyncService.GetSyncStatus:output_type -> spendsync.v1.GetSyncStatusResponse
	6,  // 16: spendsync.v1.SyncService.ResetSyncCursor:output_type -> spendsync.v1.ResetSyncCursorResponse
	9,  // 17: spendsync.v1.TransactionsService.ListTransactions:output_type -> spendsync.v1.ListTransactionsResponse
	11, // 18: spendsync.v1.TransactionsService.GetTransaction:output_type -> spendsync.v1.GetTransactionResponse
	13, // 19: spendsync.v1.TransactionsService.DeleteTransaction:output_type -> spendsync.v1.DeleteTransactionResponse
	15, // 20: spendsync.v1.TransactionsService.SetCategoryOverride:output_type -> spendsync.v1.SetCategoryOverrideResponse
	17, // 21: spendsync.v1.TransactionsService.LearnMerchantMapping:output_type -> spendsync.v1.LearnMerchantMappingResponse
	19, // 22: spendsync.v1.TransactionsService.ResetMerchantMappings:output_type -> spendsync.v1.ResetMerchantMappingsResponse
	21, // 23: spendsync.v1.TransactionsService.ExportTransactions:output_type -> spendsync.v1.ExportTransactionsResponse
	14, // [14:24] is the sub-list for method output_type
	4,  // [4:14] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_spendsync_v1_spendsync_proto_init() }
func file_spendsync_v1_spendsync_proto_init() {
	if File_spendsync_v1_spendsync_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_spendsync_v1_spendsync_proto_rawDesc), len(file_spendsync_v1_spendsync_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_spendsync_v1_spendsync_proto_goTypes,
		DependencyIndexes: file_spendsync_v1_spendsync_proto_depIdxs,
		MessageInfos:      file_spendsync_v1_spendsync_proto_msgTypes,
	}.Build()
	File_spendsync_v1_spendsync_proto = out.File
	file_spendsync_v1_spendsync_proto_goTypes = nil
	file_spendsync_v1_spendsync_proto_depIdxs = nil
}
