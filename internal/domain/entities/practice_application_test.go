package entities

import "testing"

func TestStatusValid(t *testing.T) {
	if !PaymentStatusPaid.Valid() || PaymentStatus("refunded").Valid() {
		t.Fatalf("unexpected payment status validity")
	}
	if !ApplicationStatusConfirmed.Valid() || ApplicationStatus("done").Valid() {
		t.Fatalf("unexpected application status validity")
	}
	if !ConsultationStatusInProgress.Valid() || ConsultationStatus("closed").Valid() {
		t.Fatalf("unexpected consultation status validity")
	}
}

func TestPracticeApplication_FullAddress(t *testing.T) {
	a := PracticeApplication{Address: "서울시 도봉구", AddressDetail: "905호"}
	if got := a.FullAddress(); got != "서울시 도봉구 905호" {
		t.Fatalf("unexpected %q", got)
	}
	a.AddressDetail = ""
	if got := a.FullAddress(); got != "서울시 도봉구" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPracticeApplicationPatch_IsEmpty(t *testing.T) {
	if !(PracticeApplicationPatch{}).IsEmpty() {
		t.Fatalf("expected empty patch")
	}
	name := "kim"
	if (PracticeApplicationPatch{Name: &name}).IsEmpty() {
		t.Fatalf("expected non-empty patch")
	}
}

func TestConsultationPatch_Normalize(t *testing.T) {
	completed := ConsultationStatusCompleted
	p := ConsultationPatch{Status: &completed}.Normalize()
	if p.IsCompleted == nil || !*p.IsCompleted {
		t.Fatalf("completed should force is_completed=true")
	}

	pending := ConsultationStatusPending
	yes := true
	p = ConsultationPatch{Status: &pending, IsCompleted: &yes}.Normalize()
	if p.IsCompleted == nil || *p.IsCompleted {
		t.Fatalf("pending should force is_completed=false")
	}

	inProgress := ConsultationStatusInProgress
	p = ConsultationPatch{Status: &inProgress}.Normalize()
	if p.IsCompleted != nil {
		t.Fatalf("in_progress should leave is_completed untouched")
	}
}

func TestListFilter_Normalize(t *testing.T) {
	f := ListFilter{Page: 0, PageSize: 10000, Query: "  kim "}.Normalize()
	if f.Page != 1 || f.PageSize != MaxPageSize || f.Query != "kim" {
		t.Fatalf("unexpected filter %+v", f)
	}
	f = ListFilter{Page: 3, PageSize: 20}.Normalize()
	if f.Offset() != 40 {
		t.Fatalf("unexpected offset %d", f.Offset())
	}
	f = ListFilter{All: true, Page: 5}.Normalize()
	if f.Offset() != 0 || f.PageSize != 0 {
		t.Fatalf("unexpected all filter %+v", f)
	}
	if !(ListFilter{Query: "KIM"}).Matches("Kim Minsu", "010") || (ListFilter{Query: "lee"}).Matches("kim", "010") {
		t.Fatalf("unexpected match result")
	}
}
