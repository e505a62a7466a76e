// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: prorank/v1/prorank.proto

package prorankv1

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

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	SourceRef     string                 `protobuf:"bytes,3,opt,name=source_ref,json=sourceRef,proto3" json:"source_ref,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`                        // pending | processing | completed | failed
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Job) GetSourceRef() string {
	if x != nil {
		return x.SourceRef
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ScoreBreakdown struct {
	state                     protoimpl.MessageState `protogen:"open.v1"`
	GpaContribution           int32                  `protobuf:"varint,1,opt,name=gpa_contribution,json=gpaContribution,proto3" json:"gpa_contribution,omitempty"`
	ExperienceContribution    int32                  `protobuf:"varint,2,opt,name=experience_contribution,json=experienceContribution,proto3" json:"experience_contribution,omitempty"`
	ImpactQualityContribution int32                  `protobuf:"varint,3,opt,name=impact_quality_contribution,json=impactQualityContribution,proto3" json:"impact_quality_contribution,omitempty"`
	unknownFields             protoimpl.UnknownFields
	sizeCache                 protoimpl.SizeCache
}

func (x *ScoreBreakdown) Reset() {
	*x = ScoreBreakdown{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScoreBreakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreBreakdown) ProtoMessage() {}

func (x *ScoreBreakdown) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreBreakdown.ProtoReflect.Descriptor instead.
func (*ScoreBreakdown) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{1}
}

func (x *ScoreBreakdown) GetGpaContribution() int32 {
	if x != nil {
		return x.GpaContribution
	}
	return 0
}

func (x *ScoreBreakdown) GetExperienceContribution() int32 {
	if x != nil {
		return x.ExperienceContribution
	}
	return 0
}

func (x *ScoreBreakdown) GetImpactQualityContribution() int32 {
	if x != nil {
		return x.ImpactQualityContribution
	}
	return 0
}

type Task struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId          string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	DocName        string                 `protobuf:"bytes,3,opt,name=doc_name,json=docName,proto3" json:"doc_name,omitempty"`
	Status         string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"` // pending | downloaded | scored | failed
	ViewUrl        *string                `protobuf:"bytes,5,opt,name=view_url,json=viewUrl,proto3,oneof" json:"view_url,omitempty"`
	PreviewUrl     *string                `protobuf:"bytes,6,opt,name=preview_url,json=previewUrl,proto3,oneof" json:"preview_url,omitempty"`
	Gpa            *float64               `protobuf:"fixed64,7,opt,name=gpa,proto3,oneof" json:"gpa,omitempty"`
	SchoolYear     *string                `protobuf:"bytes,8,opt,name=school_year,json=schoolYear,proto3,oneof" json:"school_year,omitempty"`
	NumInternships *int32                 `protobuf:"varint,9,opt,name=num_internships,json=numInternships,proto3,oneof" json:"num_internships,omitempty"`
	Score          *int32                 `protobuf:"varint,10,opt,name=score,proto3,oneof" json:"score,omitempty"`
	Breakdown      *ScoreBreakdown        `protobuf:"bytes,11,opt,name=breakdown,proto3,oneof" json:"breakdown,omitempty"`
	ErrorMessage   *string                `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3,oneof" json:"error_message,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Task) Reset() {
	*x = Task{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Task) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Task) ProtoMessage() {}

func (x *Task) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Task.ProtoReflect.Descriptor instead.
func (*Task) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{2}
}

func (x *Task) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Task) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Task) GetDocName() string {
	if x != nil {
		return x.DocName
	}
	return ""
}

func (x *Task) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Task) GetViewUrl() string {
	if x != nil && x.ViewUrl != nil {
		return *x.ViewUrl
	}
	return ""
}

func (x *Task) GetPreviewUrl() string {
	if x != nil && x.PreviewUrl != nil {
		return *x.PreviewUrl
	}
	return ""
}

func (x *Task) GetGpa() float64 {
	if x != nil && x.Gpa != nil {
		return *x.Gpa
	}
	return 0
}

func (x *Task) GetSchoolYear() string {
	if x != nil && x.SchoolYear != nil {
		return *x.SchoolYear
	}
	return ""
}

func (x *Task) GetNumInternships() int32 {
	if x != nil && x.NumInternships != nil {
		return *x.NumInternships
	}
	return 0
}

func (x *Task) GetScore() int32 {
	if x != nil && x.Score != nil {
		return *x.Score
	}
	return 0
}

func (x *Task) GetBreakdown() *ScoreBreakdown {
	if x != nil {
		return x.Breakdown
	}
	return nil
}

func (x *Task) GetErrorMessage() string {
	if x != nil && x.ErrorMessage != nil {
		return *x.ErrorMessage
	}
	return ""
}

func (x *Task) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

// TaskFilters are six independent toggles. School-year toggles combine
// as a union; passed and failed set together (or neither) means no
// score cut.
type TaskFilters struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Freshman      bool                   `protobuf:"varint,1,opt,name=freshman,proto3" json:"freshman,omitempty"`
	Sophomore     bool                   `protobuf:"varint,2,opt,name=sophomore,proto3" json:"sophomore,omitempty"`
	Junior        bool                   `protobuf:"varint,3,opt,name=junior,proto3" json:"junior,omitempty"`
	Senior        bool                   `protobuf:"varint,4,opt,name=senior,proto3" json:"senior,omitempty"`
	Passed        bool                   `protobuf:"varint,5,opt,name=passed,proto3" json:"passed,omitempty"`
	Failed        bool                   `protobuf:"varint,6,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskFilters) Reset() {
	*x = TaskFilters{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskFilters) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskFilters) ProtoMessage() {}

func (x *TaskFilters) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskFilters.ProtoReflect.Descriptor instead.
func (*TaskFilters) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{3}
}

func (x *TaskFilters) GetFreshman() bool {
	if x != nil {
		return x.Freshman
	}
	return false
}

func (x *TaskFilters) GetSophomore() bool {
	if x != nil {
		return x.Sophomore
	}
	return false
}

func (x *TaskFilters) GetJunior() bool {
	if x != nil {
		return x.Junior
	}
	return false
}

func (x *TaskFilters) GetSenior() bool {
	if x != nil {
		return x.Senior
	}
	return false
}

func (x *TaskFilters) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

func (x *TaskFilters) GetFailed() bool {
	if x != nil {
		return x.Failed
	}
	return false
}

type TaskStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	NumResumes    int32                  `protobuf:"varint,1,opt,name=num_resumes,json=numResumes,proto3" json:"num_resumes,omitempty"`
	AverageScore  int32                  `protobuf:"varint,2,opt,name=average_score,json=averageScore,proto3" json:"average_score,omitempty"`
	HighScore     int32                  `protobuf:"varint,3,opt,name=high_score,json=highScore,proto3" json:"high_score,omitempty"`
	LowestScore   int32                  `protobuf:"varint,4,opt,name=lowest_score,json=lowestScore,proto3" json:"lowest_score,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskStats) Reset() {
	*x = TaskStats{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskStats) ProtoMessage() {}

func (x *TaskStats) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskStats.ProtoReflect.Descriptor instead.
func (*TaskStats) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{4}
}

func (x *TaskStats) GetNumResumes() int32 {
	if x != nil {
		return x.NumResumes
	}
	return 0
}

func (x *TaskStats) GetAverageScore() int32 {
	if x != nil {
		return x.AverageScore
	}
	return 0
}

func (x *TaskStats) GetHighScore() int32 {
	if x != nil {
		return x.HighScore
	}
	return 0
}

func (x *TaskStats) GetLowestScore() int32 {
	if x != nil {
		return x.LowestScore
	}
	return 0
}

type SubmitJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SourceRef     string                 `protobuf:"bytes,1,opt,name=source_ref,json=sourceRef,proto3" json:"source_ref,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{5}
}

func (x *SubmitJobRequest) GetSourceRef() string {
	if x != nil {
		return x.SourceRef
	}
	return ""
}

func (x *SubmitJobRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{6}
}

func (x *SubmitJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{7}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{8}
}

func (x *CancelJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{9}
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{10}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ListTasksRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Filters       *TaskFilters           `protobuf:"bytes,2,opt,name=filters,proto3" json:"filters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksRequest) Reset() {
	*x = ListTasksRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksRequest) ProtoMessage() {}

func (x *ListTasksRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksRequest.ProtoReflect.Descriptor instead.
func (*ListTasksRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{11}
}

func (x *ListTasksRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ListTasksRequest) GetFilters() *TaskFilters {
	if x != nil {
		return x.Filters
	}
	return nil
}

type ListTasksResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobName       string                 `protobuf:"bytes,1,opt,name=job_name,json=jobName,proto3" json:"job_name,omitempty"`
	JobCreatedAt  string                 `protobuf:"bytes,2,opt,name=job_created_at,json=jobCreatedAt,proto3" json:"job_created_at,omitempty"`
	Tasks         []*Task                `protobuf:"bytes,3,rep,name=tasks,proto3" json:"tasks,omitempty"`
	Stats         *TaskStats             `protobuf:"bytes,4,opt,name=stats,proto3" json:"stats,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTasksResponse) Reset() {
	*x = ListTasksResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTasksResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTasksResponse) ProtoMessage() {}

func (x *ListTasksResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTasksResponse.ProtoReflect.Descriptor instead.
func (*ListTasksResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{12}
}

func (x *ListTasksResponse) GetJobName() string {
	if x != nil {
		return x.JobName
	}
	return ""
}

func (x *ListTasksResponse) GetJobCreatedAt() string {
	if x != nil {
		return x.JobCreatedAt
	}
	return ""
}

func (x *ListTasksResponse) GetTasks() []*Task {
	if x != nil {
		return x.Tasks
	}
	return nil
}

func (x *ListTasksResponse) GetStats() *TaskStats {
	if x != nil {
		return x.Stats
	}
	return nil
}

type GetTaskRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskRequest) Reset() {
	*x = GetTaskRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskRequest) ProtoMessage() {}

func (x *GetTaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskRequest.ProtoReflect.Descriptor instead.
func (*GetTaskRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{13}
}

func (x *GetTaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type GetTaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Task          *Task                  `protobuf:"bytes,1,opt,name=task,proto3" json:"task,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetTaskResponse) Reset() {
	*x = GetTaskResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetTaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetTaskResponse) ProtoMessage() {}

func (x *GetTaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetTaskResponse.ProtoReflect.Descriptor instead.
func (*GetTaskResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{14}
}

func (x *GetTaskResponse) GetTask() *Task {
	if x != nil {
		return x.Task
	}
	return nil
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Filters       *TaskFilters           `protobuf:"bytes,2,opt,name=filters,proto3" json:"filters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{15}
}

func (x *ExportResultsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExportResultsRequest) GetFilters() *TaskFilters {
	if x != nil {
		return x.Filters
	}
	return nil
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_prorank_v1_prorank_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_prorank_v1_prorank_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_prorank_v1_prorank_proto_rawDescGZIP(), []int{16}
}

func (x *ExportResultsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportResultsResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_prorank_v1_prorank_proto protoreflect.FileDescriptor

const file_prorank_v1_prorank_proto_rawDesc = "" +
	"\n" +
	"\x18prorank/v1/prorank.proto\x12\n" +
	"prorank.v1\"\x7f\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"source_ref\x18\x03 \x01(\tR\tsourceRef\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\"\xb4\x01\n" +
	"\x0eScoreBreakdown\x12)\n" +
	"\x10gpa_contribution\x18\x01 \x01(\x05R\x0fgpaContribution\x127\n" +
	"\x17experience_contribution\x18\x02 \x01(\x05R\x16experienceContribution\x12>\n" +
	"\x1bimpact_quality_contribution\x18\x03 \x01(\x05R\x19impactQualityContribution\"\xa7\x04\n" +
	"\x04Task\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x19\n" +
	"\bdoc_name\x18\x03 \x01(\tR\adocName\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1e\n" +
	"\bview_url\x18\x05 \x01(\tH\x00R\aviewUrl\x88\x01\x01\x12$\n" +
	"\vpreview_url\x18\x06 \x01(\tH\x01R\n" +
	"previewUrl\x88\x01\x01\x12\x15\n" +
	"\x03gpa\x18\a \x01(\x01H\x02R\x03gpa\x88\x01\x01\x12$\n" +
	"\vschool_year\x18\b \x01(\tH\x03R\n" +
	"schoolYear\x88\x01\x01\x12,\n" +
	"\x0fnum_internships\x18\t \x01(\x05H\x04R\x0enumInternships\x88\x01\x01\x12\x19\n" +
	"\x05score\x18\n" +
	" \x01(\x05H\x05R\x05score\x88\x01\x01\x12=\n" +
	"\tbreakdown\x18\v \x01(\v2\x1a.prorank.v1.ScoreBreakdownH\x06R\tbreakdown\x88\x01\x01\x12(\n" +
	"\rerror_message\x18\f \x01(\tH\aR\ferrorMessage\x88\x01\x01\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAtB\v\n" +
	"\t_view_urlB\x0e\n" +
	"\f_preview_urlB\x06\n" +
	"\x04_gpaB\x0e\n" +
	"\f_school_yearB\x12\n" +
	"\x10_num_internshipsB\b\n" +
	"\x06_scoreB\f\n" +
	"\n" +
	"_breakdownB\x10\n" +
	"\x0e_error_message\"\xa7\x01\n" +
	"\vTaskFilters\x12\x1a\n" +
	"\bfreshman\x18\x01 \x01(\bR\bfreshman\x12\x1c\n" +
	"\tsophomore\x18\x02 \x01(\bR\tsophomore\x12\x16\n" +
	"\x06junior\x18\x03 \x01(\bR\x06junior\x12\x16\n" +
	"\x06senior\x18\x04 \x01(\bR\x06senior\x12\x16\n" +
	"\x06passed\x18\x05 \x01(\bR\x06passed\x12\x16\n" +
	"\x06failed\x18\x06 \x01(\bR\x06failed\"\x93\x01\n" +
	"\tTaskStats\x12\x1f\n" +
	"\vnum_resumes\x18\x01 \x01(\x05R\n" +
	"numResumes\x12#\n" +
	"\raverage_score\x18\x02 \x01(\x05R\faverageScore\x12\x1d\n" +
	"\n" +
	"high_score\x18\x03 \x01(\x05R\thighScore\x12!\n" +
	"\flowest_score\x18\x04 \x01(\x05R\vlowestScore\"E\n" +
	"\x10SubmitJobRequest\x12\x1d\n" +
	"\n" +
	"source_ref\x18\x01 \x01(\tR\tsourceRef\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\"6\n" +
	"\x11SubmitJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.prorank.v1.JobR\x03job\")\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"6\n" +
	"\x11CancelJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.prorank.v1.JobR\x03job\"\x11\n" +
	"\x0fListJobsRequest\"7\n" +
	"\x10ListJobsResponse\x12#\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0f.prorank.v1.JobR\x04jobs\"\\\n" +
	"\x10ListTasksRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x121\n" +
	"\afilters\x18\x02 \x01(\v2\x17.prorank.v1.TaskFiltersR\afilters\"\xa9\x01\n" +
	"\x11ListTasksResponse\x12\x19\n" +
	"\bjob_name\x18\x01 \x01(\tR\ajobName\x12$\n" +
	"\x0ejob_created_at\x18\x02 \x01(\tR\fjobCreatedAt\x12&\n" +
	"\x05tasks\x18\x03 \x03(\v2\x10.prorank.v1.TaskR\x05tasks\x12+\n" +
	"\x05stats\x18\x04 \x01(\v2\x15.prorank.v1.TaskStatsR\x05stats\")\n" +
	"\x0eGetTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"7\n" +
	"\x0fGetTaskResponse\x12$\n" +
	"\x04task\x18\x01 \x01(\v2\x10.prorank.v1.TaskR\x04task\"`\n" +
	"\x14ExportResultsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x121\n" +
	"\afilters\x18\x02 \x01(\v2\x17.prorank.v1.TaskFiltersR\afilters\"M\n" +
	"\x15ExportResultsResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xd0\x03\n" +
	"\x0fScreenerService\x12H\n" +
	"\tSubmitJob\x12\x1c.prorank.v1.SubmitJobRequest\x1a\x1d.prorank.v1.SubmitJobResponse\x12H\n" +
	"\tCancelJob\x12\x1c.prorank.v1.CancelJobRequest\x1a\x1d.prorank.v1.CancelJobResponse\x12E\n" +
	"\bListJobs\x12\x1b.prorank.v1.ListJobsRequest\x1a\x1c.prorank.v1.ListJobsResponse\x12H\n" +
	"\tListTasks\x12\x1c.prorank.v1.ListTasksRequest\x1a\x1d.prorank.v1.ListTasksResponse\x12B\n" +
	"\aGetTask\x12\x1a.prorank.v1.GetTaskRequest\x1a\x1b.prorank.v1.GetTaskResponse\x12T\n" +
	"\rExportResults\x12 .prorank.v1.ExportResultsRequest\x1a!.prorank.v1.ExportResultsResponseB<Z:github.com/RichieRish05/ProRankAI/gen/prorank/v1;prorankv1b\x06proto3"

var (
	file_prorank_v1_prorank_proto_rawDescOnce sync.Once
	file_prorank_v1_prorank_proto_rawDescData []byte
)

func file_prorank_v1_prorank_proto_rawDescGZIP() []byte {
	file_prorank_v1_prorank_proto_rawDescOnce.Do(func() {
		file_prorank_v1_prorank_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_prorank_v1_prorank_proto_rawDesc), len(file_prorank_v1_prorank_proto_rawDesc)))
	})
	return file_prorank_v1_prorank_proto_rawDescData
}

var file_prorank_v1_prorank_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_prorank_v1_prorank_proto_goTypes = []any{
	(*Job)(nil),                   // 0: prorank.v1.Job
	(*ScoreBreakdown)(nil),        // 1: prorank.v1.ScoreBreakdown
	(*Task)(nil),                  // 2: prorank.v1.Task
	(*TaskFilters)(nil),           // 3: prorank.v1.TaskFilters
	(*TaskStats)(nil),             // 4: prorank.v1.TaskStats
	(*SubmitJobRequest)(nil),      // 5: prorank.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),     // 6: prorank.v1.SubmitJobResponse
	(*CancelJobRequest)(nil),      // 7: prorank.v1.CancelJobRequest
	(*CancelJobResponse)(nil),     // 8: prorank.v1.CancelJobResponse
	(*ListJobsRequest)(nil),       // 9: prorank.v1.ListJobsRequest
	(*ListJobsResponse)(nil),      // 10: prorank.v1.ListJobsResponse
	(*ListTasksRequest)(nil),      // 11: prorank.v1.ListTasksRequest
	(*ListTasksResponse)(nil),     // 12: prorank.v1.ListTasksResponse
	(*GetTaskRequest)(nil),        // 13: prorank.v1.GetTaskRequest
	(*GetTaskResponse)(nil),       // 14: prorank.v1.GetTaskResponse
	(*ExportResultsRequest)(nil),  // 15: prorank.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil), // 16: prorank.v1.ExportResultsResponse
}
var file_prorank_v1_prorank_proto_depIdxs = []int32{
	1,  // 0: prorank.v1.Task.breakdown:type_name -> prorank.v1.ScoreBreakdown
	0,  // 1: prorank.v1.SubmitJobResponse.job:type_name -> prorank.v1.Job
	0,  // 2: prorank.v1.CancelJobResponse.job:type_name -> prorank.v1.Job
	0,  // 3: prorank.v1.ListJobsResponse.jobs:type_name -> prorank.v1.Job
	3,  // 4: prorank.v1.ListTasksRequest.filters:type_name -> prorank.v1.TaskFilters
	2,  // 5: prorank.v1.ListTasksResponse.tasks:type_name -> prorank.v1.Task
	4,  // 6: prorank.v1.ListTasksResponse.stats:type_name -> prorank.v1.TaskStats
	2,  // 7: prorank.v1.GetTaskResponse.task:type_name -> prorank.v1.Task
	3,  // 8: prorank.v1.ExportResultsRequest.filters:type_name -> prorank.v1.TaskFilters
	5,  // 9: prorank.v1.ScreenerService.SubmitJob:input_type -> prorank.v1.SubmitJobRequest
	7,  // 10: prorank.v1.ScreenerService.CancelJob:input_type -> prorank.v1.CancelJobRequest
	9,  // 11: prorank.v1.ScreenerService.ListJobs:input_type -> prorank.v1.ListJobsRequest
	11, // 12: prorank.v1.ScreenerService.ListTasks:input_type -> prorank.v1.ListTasksRequest
	13, // 13: prorank.v1.ScreenerService.GetTask:input_type -> prorank.v1.GetTaskRequest
	15, // 14: prorank.v1.ScreenerService.ExportResults:input_type -> prorank.v1.ExportResultsRequest
	6,  // 15: prorank.v1.ScreenerService.SubmitJob:output_type -> prorank.v1.SubmitJobResponse
	8,  // 16: prorank.v1.ScreenerService.CancelJob:output_type -> prorank.v1.CancelJobResponse
	10, // 17: prorank.v1.ScreenerService.ListJobs:output_type -> prorank.v1.ListJobsResponse
	12, // 18: prorank.v1.ScreenerService.ListTasks:output_type -> prorank.v1.ListTasksResponse
	14, // 19: prorank.v1.ScreenerService.GetTask:output_type -> prorank.v1.GetTaskResponse
	16, // 20: prorank.v1.ScreenerService.ExportResults:output_type -> prorank.v1.ExportResultsResponse
	15, // [15:21] is the sub-list for method output_type
	9,  // [9:15] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_prorank_v1_prorank_proto_init() }
func file_prorank_v1_prorank_proto_init() {
	if File_prorank_v1_prorank_proto != nil {
		return
	}
	file_prorank_v1_prorank_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_prorank_v1_prorank_proto_rawDesc), len(file_prorank_v1_prorank_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_prorank_v1_prorank_proto_goTypes,
		DependencyIndexes: file_prorank_v1_prorank_proto_depIdxs,
		MessageInfos:      file_prorank_v1_prorank_proto_msgTypes,
	}.Build()
	File_prorank_v1_prorank_proto = out.File
	file_prorank_v1_prorank_proto_goTypes = nil
	file_prorank_v1_prorank_proto_depIdxs = nil
}
