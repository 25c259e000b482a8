// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: greenhome/v1/greenhome.proto

package greenhomev1

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

type User struct {
	state                   protoimpl.MessageState `protogen:"open.v1"`
	Id                      string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Email                   string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	FirstName               string                 `protobuf:"bytes,3,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName                string                 `protobuf:"bytes,4,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	Points                  int32                  `protobuf:"varint,5,opt,name=points,proto3" json:"points,omitempty"`
	Badges                  []string               `protobuf:"bytes,6,rep,name=badges,proto3" json:"badges,omitempty"`
	BillsAnalyzedCount      int32                  `protobuf:"varint,7,opt,name=bills_analyzed_count,json=billsAnalyzedCount,proto3" json:"bills_analyzed_count,omitempty"`
	TotalConsumptionReduced float64                `protobuf:"fixed64,8,opt,name=total_consumption_reduced,json=totalConsumptionReduced,proto3" json:"total_consumption_reduced,omitempty"`
	CreatedAt               string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt               string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields           protoimpl.UnknownFields
	sizeCache               protoimpl.SizeCache
}

func (x *User) Reset() {
	*x = User{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *User) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*User) ProtoMessage() {}

func (x *User) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use User.ProtoReflect.Descriptor instead.
func (*User) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{0}
}

func (x *User) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *User) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

func (x *User) GetPoints() int32 {
	if x != nil {
		return x.Points
	}
	return 0
}

func (x *User) GetBadges() []string {
	if x != nil {
		return x.Badges
	}
	return nil
}

func (x *User) GetBillsAnalyzedCount() int32 {
	if x != nil {
		return x.BillsAnalyzedCount
	}
	return 0
}

func (x *User) GetTotalConsumptionReduced() float64 {
	if x != nil {
		return x.TotalConsumptionReduced
	}
	return 0
}

func (x *User) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *User) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EnergyUsage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Month         string                 `protobuf:"bytes,1,opt,name=month,proto3" json:"month,omitempty"`
	Consumption   float64                `protobuf:"fixed64,2,opt,name=consumption,proto3" json:"consumption,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnergyUsage) Reset() {
	*x = EnergyUsage{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnergyUsage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnergyUsage) ProtoMessage() {}

func (x *EnergyUsage) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnergyUsage.ProtoReflect.Descriptor instead.
func (*EnergyUsage) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{1}
}

func (x *EnergyUsage) GetMonth() string {
	if x != nil {
		return x.Month
	}
	return ""
}

func (x *EnergyUsage) GetConsumption() float64 {
	if x != nil {
		return x.Consumption
	}
	return 0
}

type BillResult struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UserId           string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	TotalConsumption float64                `protobuf:"fixed64,3,opt,name=total_consumption,json=totalConsumption,proto3" json:"total_consumption,omitempty"`
	CarbonKg         float64                `protobuf:"fixed64,4,opt,name=carbon_kg,json=carbonKg,proto3" json:"carbon_kg,omitempty"`
	// Rendered with two decimals at the rim; stored unrounded.
	TotalAmount   string         `protobuf:"bytes,5,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`
	EnergyUsage   []*EnergyUsage `protobuf:"bytes,6,rep,name=energy_usage,json=energyUsage,proto3" json:"energy_usage,omitempty"`
	SavingsTip    string         `protobuf:"bytes,7,opt,name=savings_tip,json=savingsTip,proto3" json:"savings_tip,omitempty"`
	BillId        string         `protobuf:"bytes,8,opt,name=bill_id,json=billId,proto3" json:"bill_id,omitempty"`
	BillDate      string         `protobuf:"bytes,9,opt,name=bill_date,json=billDate,proto3" json:"bill_date,omitempty"`
	AnalysisDate  string         `protobuf:"bytes,10,opt,name=analysis_date,json=analysisDate,proto3" json:"analysis_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BillResult) Reset() {
	*x = BillResult{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BillResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BillResult) ProtoMessage() {}

func (x *BillResult) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BillResult.ProtoReflect.Descriptor instead.
func (*BillResult) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{2}
}

func (x *BillResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BillResult) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *BillResult) GetTotalConsumption() float64 {
	if x != nil {
		return x.TotalConsumption
	}
	return 0
}

func (x *BillResult) GetCarbonKg() float64 {
	if x != nil {
		return x.CarbonKg
	}
	return 0
}

func (x *BillResult) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *BillResult) GetEnergyUsage() []*EnergyUsage {
	if x != nil {
		return x.EnergyUsage
	}
	return nil
}

func (x *BillResult) GetSavingsTip() string {
	if x != nil {
		return x.SavingsTip
	}
	return ""
}

func (x *BillResult) GetBillId() string {
	if x != nil {
		return x.BillId
	}
	return ""
}

func (x *BillResult) GetBillDate() string {
	if x != nil {
		return x.BillDate
	}
	return ""
}

func (x *BillResult) GetAnalysisDate() string {
	if x != nil {
		return x.AnalysisDate
	}
	return ""
}

type BadgeAward struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Key           string                 `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Points        int32                  `protobuf:"varint,4,opt,name=points,proto3" json:"points,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BadgeAward) Reset() {
	*x = BadgeAward{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BadgeAward) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BadgeAward) ProtoMessage() {}

func (x *BadgeAward) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BadgeAward.ProtoReflect.Descriptor instead.
func (*BadgeAward) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{3}
}

func (x *BadgeAward) GetKey() string {
	if x != nil {
		return x.Key
	}
	return ""
}

func (x *BadgeAward) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *BadgeAward) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *BadgeAward) GetPoints() int32 {
	if x != nil {
		return x.Points
	}
	return 0
}

type Suggestion struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	Action        string                 `protobuf:"bytes,3,opt,name=action,proto3" json:"action,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Suggestion) Reset() {
	*x = Suggestion{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Suggestion) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Suggestion) ProtoMessage() {}

func (x *Suggestion) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Suggestion.ProtoReflect.Descriptor instead.
func (*Suggestion) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{4}
}

func (x *Suggestion) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Suggestion) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Suggestion) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

type CreateUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	FirstName     string                 `protobuf:"bytes,2,opt,name=first_name,json=firstName,proto3" json:"first_name,omitempty"`
	LastName      string                 `protobuf:"bytes,3,opt,name=last_name,json=lastName,proto3" json:"last_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserRequest) Reset() {
	*x = CreateUserRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserRequest) ProtoMessage() {}

func (x *CreateUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserRequest.ProtoReflect.Descriptor instead.
func (*CreateUserRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{5}
}

func (x *CreateUserRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateUserRequest) GetFirstName() string {
	if x != nil {
		return x.FirstName
	}
	return ""
}

func (x *CreateUserRequest) GetLastName() string {
	if x != nil {
		return x.LastName
	}
	return ""
}

type CreateUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUserResponse) Reset() {
	*x = CreateUserResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUserResponse) ProtoMessage() {}

func (x *CreateUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUserResponse.ProtoReflect.Descriptor instead.
func (*CreateUserResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{6}
}

func (x *CreateUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type GetUserRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserRequest) Reset() {
	*x = GetUserRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserRequest) ProtoMessage() {}

func (x *GetUserRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserRequest.ProtoReflect.Descriptor instead.
func (*GetUserRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{7}
}

func (x *GetUserRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetUserResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	User          *User                  `protobuf:"bytes,1,opt,name=user,proto3" json:"user,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetUserResponse) Reset() {
	*x = GetUserResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetUserResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetUserResponse) ProtoMessage() {}

func (x *GetUserResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetUserResponse.ProtoReflect.Descriptor instead.
func (*GetUserResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{8}
}

func (x *GetUserResponse) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

type LeaderboardRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaderboardRequest) Reset() {
	*x = LeaderboardRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaderboardRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaderboardRequest) ProtoMessage() {}

func (x *LeaderboardRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaderboardRequest.ProtoReflect.Descriptor instead.
func (*LeaderboardRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{9}
}

func (x *LeaderboardRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type LeaderboardEntry struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rank          int32                  `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	UserId        string                 `protobuf:"bytes,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	Points        int32                  `protobuf:"varint,4,opt,name=points,proto3" json:"points,omitempty"`
	BadgeCount    int32                  `protobuf:"varint,5,opt,name=badge_count,json=badgeCount,proto3" json:"badge_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaderboardEntry) Reset() {
	*x = LeaderboardEntry{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaderboardEntry) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaderboardEntry) ProtoMessage() {}

func (x *LeaderboardEntry) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaderboardEntry.ProtoReflect.Descriptor instead.
func (*LeaderboardEntry) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{10}
}

func (x *LeaderboardEntry) GetRank() int32 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *LeaderboardEntry) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *LeaderboardEntry) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *LeaderboardEntry) GetPoints() int32 {
	if x != nil {
		return x.Points
	}
	return 0
}

func (x *LeaderboardEntry) GetBadgeCount() int32 {
	if x != nil {
		return x.BadgeCount
	}
	return 0
}

type LeaderboardResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Entries       []*LeaderboardEntry    `protobuf:"bytes,1,rep,name=entries,proto3" json:"entries,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LeaderboardResponse) Reset() {
	*x = LeaderboardResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LeaderboardResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LeaderboardResponse) ProtoMessage() {}

func (x *LeaderboardResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LeaderboardResponse.ProtoReflect.Descriptor instead.
func (*LeaderboardResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{11}
}

func (x *LeaderboardResponse) GetEntries() []*LeaderboardEntry {
	if x != nil {
		return x.Entries
	}
	return nil
}

type AnalyzeBillRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	UserId   string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Filename string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Image    []byte                 `protobuf:"bytes,3,opt,name=image,proto3" json:"image,omitempty"`
	// When set, the bill is queued for background analysis and only job_id is
	// returned.
	Asynchronous  bool `protobuf:"varint,4,opt,name=asynchronous,proto3" json:"asynchronous,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeBillRequest) Reset() {
	*x = AnalyzeBillRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeBillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeBillRequest) ProtoMessage() {}

func (x *AnalyzeBillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeBillRequest.ProtoReflect.Descriptor instead.
func (*AnalyzeBillRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{12}
}

func (x *AnalyzeBillRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AnalyzeBillRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *AnalyzeBillRequest) GetImage() []byte {
	if x != nil {
		return x.Image
	}
	return nil
}

func (x *AnalyzeBillRequest) GetAsynchronous() bool {
	if x != nil {
		return x.Asynchronous
	}
	return false
}

type AnalyzeBillResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *BillResult            `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	EarnedPoints  int32                  `protobuf:"varint,2,opt,name=earned_points,json=earnedPoints,proto3" json:"earned_points,omitempty"`
	NewBadges     []*BadgeAward          `protobuf:"bytes,3,rep,name=new_badges,json=newBadges,proto3" json:"new_badges,omitempty"`
	Tips          []string               `protobuf:"bytes,4,rep,name=tips,proto3" json:"tips,omitempty"`
	JobId         string                 `protobuf:"bytes,5,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AnalyzeBillResponse) Reset() {
	*x = AnalyzeBillResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalyzeBillResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalyzeBillResponse) ProtoMessage() {}

func (x *AnalyzeBillResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalyzeBillResponse.ProtoReflect.Descriptor instead.
func (*AnalyzeBillResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{13}
}

func (x *AnalyzeBillResponse) GetResult() *BillResult {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *AnalyzeBillResponse) GetEarnedPoints() int32 {
	if x != nil {
		return x.EarnedPoints
	}
	return 0
}

func (x *AnalyzeBillResponse) GetNewBadges() []*BadgeAward {
	if x != nil {
		return x.NewBadges
	}
	return nil
}

func (x *AnalyzeBillResponse) GetTips() []string {
	if x != nil {
		return x.Tips
	}
	return nil
}

func (x *AnalyzeBillResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ListResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit         int32                  `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsRequest) Reset() {
	*x = ListResultsRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsRequest) ProtoMessage() {}

func (x *ListResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsRequest.ProtoReflect.Descriptor instead.
func (*ListResultsRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{14}
}

func (x *ListResultsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListResultsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*BillResult          `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsResponse) Reset() {
	*x = ListResultsResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsResponse) ProtoMessage() {}

func (x *ListResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsResponse.ProtoReflect.Descriptor instead.
func (*ListResultsResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{15}
}

func (x *ListResultsResponse) GetResults() []*BillResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type TrendReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrendReportRequest) Reset() {
	*x = TrendReportRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrendReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrendReportRequest) ProtoMessage() {}

func (x *TrendReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrendReportRequest.ProtoReflect.Descriptor instead.
func (*TrendReportRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{16}
}

func (x *TrendReportRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type TrendReportResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Comparable bool                   `protobuf:"varint,1,opt,name=comparable,proto3" json:"comparable,omitempty"`
	DeltaKwh   float64                `protobuf:"fixed64,2,opt,name=delta_kwh,json=deltaKwh,proto3" json:"delta_kwh,omitempty"`
	// One-decimal percentage, or "N/A" when the previous reading was zero.
	PercentChange string        `protobuf:"bytes,3,opt,name=percent_change,json=percentChange,proto3" json:"percent_change,omitempty"`
	Message       string        `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	Summary       string        `protobuf:"bytes,5,opt,name=summary,proto3" json:"summary,omitempty"`
	Advice        []string      `protobuf:"bytes,6,rep,name=advice,proto3" json:"advice,omitempty"`
	Suggestions   []*Suggestion `protobuf:"bytes,7,rep,name=suggestions,proto3" json:"suggestions,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TrendReportResponse) Reset() {
	*x = TrendReportResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TrendReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TrendReportResponse) ProtoMessage() {}

func (x *TrendReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TrendReportResponse.ProtoReflect.Descriptor instead.
func (*TrendReportResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{17}
}

func (x *TrendReportResponse) GetComparable() bool {
	if x != nil {
		return x.Comparable
	}
	return false
}

func (x *TrendReportResponse) GetDeltaKwh() float64 {
	if x != nil {
		return x.DeltaKwh
	}
	return 0
}

func (x *TrendReportResponse) GetPercentChange() string {
	if x != nil {
		return x.PercentChange
	}
	return ""
}

func (x *TrendReportResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *TrendReportResponse) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

func (x *TrendReportResponse) GetAdvice() []string {
	if x != nil {
		return x.Advice
	}
	return nil
}

func (x *TrendReportResponse) GetSuggestions() []*Suggestion {
	if x != nil {
		return x.Suggestions
	}
	return nil
}

type ExportHistoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryRequest) Reset() {
	*x = ExportHistoryRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryRequest) ProtoMessage() {}

func (x *ExportHistoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryRequest.ProtoReflect.Descriptor instead.
func (*ExportHistoryRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{18}
}

func (x *ExportHistoryRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ExportHistoryRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportHistoryRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportHistoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportHistoryResponse) Reset() {
	*x = ExportHistoryResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportHistoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportHistoryResponse) ProtoMessage() {}

func (x *ExportHistoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportHistoryResponse.ProtoReflect.Descriptor instead.
func (*ExportHistoryResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{19}
}

func (x *ExportHistoryResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ChatMessage struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Role          string                 `protobuf:"bytes,1,opt,name=role,proto3" json:"role,omitempty"` // "user" | "assistant"
	Content       string                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ChatMessage) Reset() {
	*x = ChatMessage{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ChatMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ChatMessage) ProtoMessage() {}

func (x *ChatMessage) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ChatMessage.ProtoReflect.Descriptor instead.
func (*ChatMessage) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{20}
}

func (x *ChatMessage) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *ChatMessage) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

type AdviseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Messages      []*ChatMessage         `protobuf:"bytes,2,rep,name=messages,proto3" json:"messages,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdviseRequest) Reset() {
	*x = AdviseRequest{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdviseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdviseRequest) ProtoMessage() {}

func (x *AdviseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdviseRequest.ProtoReflect.Descriptor instead.
func (*AdviseRequest) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{21}
}

func (x *AdviseRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *AdviseRequest) GetMessages() []*ChatMessage {
	if x != nil {
		return x.Messages
	}
	return nil
}

type AdviseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reply         string                 `protobuf:"bytes,1,opt,name=reply,proto3" json:"reply,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdviseResponse) Reset() {
	*x = AdviseResponse{}
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdviseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdviseResponse) ProtoMessage() {}

func (x *AdviseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_greenhome_v1_greenhome_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdviseResponse.ProtoReflect.Descriptor instead.
func (*AdviseResponse) Descriptor() ([]byte, []int) {
	return file_greenhome_v1_greenhome_proto_rawDescGZIP(), []int{22}
}

func (x *AdviseResponse) GetReply() string {
	if x != nil {
		return x.Reply
	}
	return ""
}

var File_greenhome_v1_greenhome_proto protoreflect.FileDescriptor

const file_greenhome_v1_greenhome_proto_rawDesc = "" +
	"\n" +
	"\x1cgreenhome/v1/greenhome.proto\x12\fgreenhome.v1\"\xc4\x02\n" +
	"\x04User\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"first_name\x18\x03 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x04 \x01(\tR\blastName\x12\x16\n" +
	"\x06points\x18\x05 \x01(\x05R\x06points\x12\x16\n" +
	"\x06badges\x18\x06 \x03(\tR\x06badges\x120\n" +
	"\x14bills_analyzed_count\x18\a \x01(\x05R\x12billsAnalyzedCount\x12:\n" +
	"\x19total_consumption_reduced\x18\b \x01(\x01R\x17totalConsumptionReduced\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"E\n" +
	"\vEnergyUsage\x12\x14\n" +
	"\x05month\x18\x01 \x01(\tR\x05month\x12 \n" +
	"\vconsumption\x18\x02 \x01(\x01R\vconsumption\"\xdc\x02\n" +
	"\n" +
	"BillResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12+\n" +
	"\x11total_consumption\x18\x03 \x01(\x01R\x10totalConsumption\x12\x1b\n" +
	"\tcarbon_kg\x18\x04 \x01(\x01R\bcarbonKg\x12!\n" +
	"\ftotal_amount\x18\x05 \x01(\tR\vtotalAmount\x12<\n" +
	"\fenergy_usage\x18\x06 \x03(\v2\x19.greenhome.v1.EnergyUsageR\venergyUsage\x12\x1f\n" +
	"\vsavings_tip\x18\a \x01(\tR\n" +
	"savingsTip\x12\x17\n" +
	"\abill_id\x18\b \x01(\tR\x06billId\x12\x1b\n" +
	"\tbill_date\x18\t \x01(\tR\bbillDate\x12#\n" +
	"\ranalysis_date\x18\n" +
	" \x01(\tR\fanalysisDate\"l\n" +
	"\n" +
	"BadgeAward\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12\x16\n" +
	"\x06points\x18\x04 \x01(\x05R\x06points\"R\n" +
	"\n" +
	"Suggestion\x12\x12\n" +
	"\x04type\x18\x01 \x01(\tR\x04type\x12\x18\n" +
	"\amessage\x18\x02 \x01(\tR\amessage\x12\x16\n" +
	"\x06action\x18\x03 \x01(\tR\x06action\"e\n" +
	"\x11CreateUserRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1d\n" +
	"\n" +
	"first_name\x18\x02 \x01(\tR\tfirstName\x12\x1b\n" +
	"\tlast_name\x18\x03 \x01(\tR\blastName\"<\n" +
	"\x12CreateUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.greenhome.v1.UserR\x04user\")\n" +
	"\x0eGetUserRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"9\n" +
	"\x0fGetUserResponse\x12&\n" +
	"\x04user\x18\x01 \x01(\v2\x12.greenhome.v1.UserR\x04user\"*\n" +
	"\x12LeaderboardRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"\x8e\x01\n" +
	"\x10LeaderboardEntry\x12\x12\n" +
	"\x04rank\x18\x01 \x01(\x05R\x04rank\x12\x17\n" +
	"\auser_id\x18\x02 \x01(\tR\x06userId\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12\x16\n" +
	"\x06points\x18\x04 \x01(\x05R\x06points\x12\x1f\n" +
	"\vbadge_count\x18\x05 \x01(\x05R\n" +
	"badgeCount\"O\n" +
	"\x13LeaderboardResponse\x128\n" +
	"\aentries\x18\x01 \x03(\v2\x1e.greenhome.v1.LeaderboardEntryR\aentries\"\x83\x01\n" +
	"\x12AnalyzeBillRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x14\n" +
	"\x05image\x18\x03 \x01(\fR\x05image\x12\"\n" +
	"\fasynchronous\x18\x04 \x01(\bR\fasynchronous\"\xd0\x01\n" +
	"\x13AnalyzeBillResponse\x120\n" +
	"\x06result\x18\x01 \x01(\v2\x18.greenhome.v1.BillResultR\x06result\x12#\n" +
	"\rearned_points\x18\x02 \x01(\x05R\fearnedPoints\x127\n" +
	"\n" +
	"new_badges\x18\x03 \x03(\v2\x18.greenhome.v1.BadgeAwardR\tnewBadges\x12\x12\n" +
	"\x04tips\x18\x04 \x03(\tR\x04tips\x12\x15\n" +
	"\x06job_id\x18\x05 \x01(\tR\x05jobId\"C\n" +
	"\x12ListResultsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x14\n" +
	"\x05limit\x18\x02 \x01(\x05R\x05limit\"I\n" +
	"\x13ListResultsResponse\x122\n" +
	"\aresults\x18\x01 \x03(\v2\x18.greenhome.v1.BillResultR\aresults\"-\n" +
	"\x12TrendReportRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\"\x81\x02\n" +
	"\x13TrendReportResponse\x12\x1e\n" +
	"\n" +
	"comparable\x18\x01 \x01(\bR\n" +
	"comparable\x12\x1b\n" +
	"\tdelta_kwh\x18\x02 \x01(\x01R\bdeltaKwh\x12%\n" +
	"\x0epercent_change\x18\x03 \x01(\tR\rpercentChange\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12\x18\n" +
	"\asummary\x18\x05 \x01(\tR\asummary\x12\x16\n" +
	"\x06advice\x18\x06 \x03(\tR\x06advice\x12:\n" +
	"\vsuggestions\x18\a \x03(\v2\x18.greenhome.v1.SuggestionR\vsuggestions\"e\n" +
	"\x14ExportHistoryRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportHistoryResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\";\n" +
	"\vChatMessage\x12\x12\n" +
	"\x04role\x18\x01 \x01(\tR\x04role\x12\x18\n" +
	"\acontent\x18\x02 \x01(\tR\acontent\"_\n" +
	"\rAdviseRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x125\n" +
	"\bmessages\x18\x02 \x03(\v2\x19.greenhome.v1.ChatMessageR\bmessages\"&\n" +
	"\x0eAdviseResponse\x12\x14\n" +
	"\x05reply\x18\x01 \x01(\tR\x05reply2\xfb\x01\n" +
	"\fUsersService\x12O\n" +
	"\n" +
	"CreateUser\x12\x1f.greenhome.v1.CreateUserRequest\x1a .greenhome.v1.CreateUserResponse\x12F\n" +
	"\aGetUser\x12\x1c.greenhome.v1.GetUserRequest\x1a\x1d.greenhome.v1.GetUserResponse\x12R\n" +
	"\vLeaderboard\x12 .greenhome.v1.LeaderboardRequest\x1a!.greenhome.v1.LeaderboardResponse2\x90\x02\n" +
	"\x0fAnalysesService\x12R\n" +
	"\vAnalyzeBill\x12 .greenhome.v1.AnalyzeBillRequest\x1a!.greenhome.v1.AnalyzeBillResponse\x12R\n" +
	"\vListResults\x12 .greenhome.v1.ListResultsRequest\x1a!.greenhome.v1.ListResultsResponse\x12U\n" +
	"\x0eGetTrendReport\x12 .greenhome.v1.TrendReportRequest\x1a!.greenhome.v1.TrendReportResponse2i\n" +
	"\rExportService\x12X\n" +
	"\rExportHistory\x12\".greenhome.v1.ExportHistoryRequest\x1a#.greenhome.v1.ExportHistoryResponse2R\n" +
	"\vChatService\x12C\n" +
	"\x06Advise\x12\x1b.greenhome.v1.AdviseRequest\x1a\x1c.greenhome.v1.AdviseResponseBMZKgithub.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1;greenhomev1b\x06proto3"

var (
	file_greenhome_v1_greenhome_proto_rawDescOnce sync.Once
	file_greenhome_v1_greenhome_proto_rawDescData []byte
)

func file_greenhome_v1_greenhome_proto_rawDescGZIP() []byte {
	file_greenhome_v1_greenhome_proto_rawDescOnce.Do(func() {
		file_greenhome_v1_greenhome_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_greenhome_v1_greenhome_proto_rawDesc), len(file_greenhome_v1_greenhome_proto_rawDesc)))
	})
	return file_greenhome_v1_greenhome_proto_rawDescData
}

var file_greenhome_v1_greenhome_proto_msgTypes = make([]protoimpl.MessageInfo, 23)
var file_greenhome_v1_greenhome_proto_goTypes = []any{
	(*User)(nil),                  // 0: greenhome.v1.User
	(*EnergyUsage)(nil),           // 1: greenhome.v1.EnergyUsage
	(*BillResult)(nil),            // 2: greenhome.v1.BillResult
	(*BadgeAward)(nil),            // 3: greenhome.v1.BadgeAward
	(*Suggestion)(nil),            // 4: greenhome.v1.Suggestion
	(*CreateUserRequest)(nil),     // 5: greenhome.v1.CreateUserRequest
	(*CreateUserResponse)(nil),    // 6: greenhome.v1.CreateUserResponse
	(*GetUserRequest)(nil),        // 7: greenhome.v1.GetUserRequest
	(*GetUserResponse)(nil),       // 8: greenhome.v1.GetUserResponse
	(*LeaderboardRequest)(nil),    // 9: greenhome.v1.LeaderboardRequest
	(*LeaderboardEntry)(nil),      // 10: greenhome.v1.LeaderboardEntry
	(*LeaderboardResponse)(nil),   // 11: greenhome.v1.LeaderboardResponse
	(*AnalyzeBillRequest)(nil),    // 12: greenhome.v1.AnalyzeBillRequest
	(*AnalyzeBillResponse)(nil),   // 13: greenhome.v1.AnalyzeBillResponse
	(*ListResultsRequest)(nil),    // 14: greenhome.v1.ListResultsRequest
	(*ListResultsResponse)(nil),   // 15: greenhome.v1.ListResultsResponse
	(*TrendReportRequest)(nil),    // 16: greenhome.v1.TrendReportRequest
	(*TrendReportResponse)(nil),   // 17: greenhome.v1.TrendReportResponse
	(*ExportHistoryRequest)(nil),  // 18: greenhome.v1.ExportHistoryRequest
	(*ExportHistoryResponse)(nil), // 19: greenhome.v1.ExportHistoryResponse
	(*ChatMessage)(nil),           // 20: greenhome.v1.ChatMessage
	(*AdviseRequest)(nil),         // 21: greenhome.v1.AdviseRequest
	(*AdviseResponse)(nil),        // 22: greenhome.v1.AdviseResponse
}
var file_greenhome_v1_greenhome_proto_depIdxs = []int32{
	1,  // 0: greenhome.v1.BillResult.energy_usage:type_name -> greenhome.v1.EnergyUsage
	0,  // 1: greenhome.v1.CreateUserResponse.user:type_name -> greenhome.v1.User
	0,  // 2: greenhome.v1.GetUserResponse.user:type_name -> greenhome.v1.User
	10, // 3: greenhome.v1.LeaderboardResponse.entries:type_name -> greenhome.v1.LeaderboardEntry
	2,  // 4: greenhome.v1.AnalyzeBillResponse.result:type_name -> greenhome.v1.BillResult
	3,  // 5: greenhome.v1.AnalyzeBillResponse.new_badges:type_name -> greenhome.v1.BadgeAward
	2,  // 6: greenhome.v1.ListResultsResponse.results:type_name -> greenhome.v1.BillResult
	4,  // 7: greenhome.v1.TrendReportResponse.suggestions:type_name -> greenhome.v1.Suggestion
	20, // 8: greenhome.v1.AdviseRequest.messages:type_name -> greenhome.v1.ChatMessage
	5,  // 9: greenhome.v1.UsersService.CreateUser:input_type -> greenhome.v1.CreateUserRequest
	7,  // 10: greenhome.v1.UsersService.GetUser:input_type -> greenhome.v1.GetUserRequest
	9,  // 11: greenhome.v1.UsersService.Leaderboard:input_type -> greenhome.v1.LeaderboardRequest
	12, // 12: greenhome.v1.AnalysesService.AnalyzeBill:input_type -> greenhome.v1.AnalyzeBillRequest
	14, // 13: greenhome.v1.AnalysesService.ListResults:input_type -> greenhome.v1.ListResultsRequest
	16, // 14: greenhome.v1.AnalysesService.GetTrendReport:input_type -> greenhome.v1.TrendReportRequest
	18, // 15: greenhome.v1.ExportService.ExportHistory:input_type -> greenhome.v1.ExportHistoryRequest
	21, // 16: greenhome.v1.ChatService.Advise:input_type -> greenhome.v1.AdviseRequest
	6,  // 17: greenhome.v1.UsersService.CreateUser:output_type -> greenhome.v1.CreateUserResponse
	8,  // 18: greenhome.v1.UsersService.GetUser:output_type -> greenhome.v1.GetUserResponse
	11, // 19: greenhome.v1.UsersService.Leaderboard:output_type -> greenhome.v1.LeaderboardResponse
	13, // 20: greenhome.v1.AnalysesService.AnalyzeBill:output_type -> greenhome.v1.AnalyzeBillResponse
	15, // 21: greenhome.v1.AnalysesService.ListResults:output_type -> greenhome.v1.ListResultsResponse
	17, // 22: greenhome.v1.AnalysesService.GetTrendReport:output_type -> greenhome.v1.TrendReportResponse
	19, // 23: greenhome.v1.ExportService.ExportHistory:output_type -> greenhome.v1.ExportHistoryResponse
	22, // 24: greenhome.v1.ChatService.Advise:output_type -> greenhome.v1.AdviseResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_greenhome_v1_greenhome_proto_init() }
func file_greenhome_v1_greenhome_proto_init() {
	if File_greenhome_v1_greenhome_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_greenhome_v1_greenhome_proto_rawDesc), len(file_greenhome_v1_greenhome_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   23,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_greenhome_v1_greenhome_proto_goTypes,
		DependencyIndexes: file_greenhome_v1_greenhome_proto_depIdxs,
		MessageInfos:      file_greenhome_v1_greenhome_proto_msgTypes,
	}.Build()
	File_greenhome_v1_greenhome_proto = out.File
	file_greenhome_v1_greenhome_proto_goTypes = nil
	file_greenhome_v1_greenhome_proto_depIdxs = nil
}
