package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"placement_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// Excel needs the BOM to open UTF-8 CSV with Korean text.
const utf8BOM = "\xEF\xBB\xBF"

var kst = time.FixedZone("KST", 9*3600)

func writeCSV(c *gin.Context, name string, header []string, rows [][]string) error {
	filename := fmt.Sprintf("%s_%s.csv", name, time.Now().In(kst).Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.WriteString(utf8BOM); err != nil {
		return err
	}
	w := csv.NewWriter(c.Writer)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	return w.Error()
}

func formatKST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kst).Format("2006-01-02 15:04:05")
}

func yesNo(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

var consultationCSVHeader = []string{"ID", "이름", "연락처", "최종학력", "문의사유", "유입경로", "상태", "완료여부", "메모", "수기입력", "신청일시"}

func consultationRows(items []entities.Consultation) [][]string {
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			c.ID, c.Name, c.Contact, c.Education, c.Reason, c.ClickSource,
			string(c.Status), yesNo(c.IsCompleted), c.Notes, yesNo(c.IsManualEntry), formatKST(c.CreatedAt),
		})
	}
	return rows
}

var practiceCSVHeader = []string{
	"ID", "이름", "성별", "연락처", "생년월일", "주소", "우편번호", "실습유형", "취업희망분야", "고용형태",
	"이력서", "자격증", "결제금액", "결제상태", "결제번호", "상태", "유입경로", "신청일시",
}

func practiceRows(items []entities.PracticeApplication) [][]string {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			a.ID, a.Name, a.Gender, a.Contact, a.BirthDate, a.FullAddress(), a.Zonecode,
			a.PracticeType, a.DesiredJobField, strings.Join(a.EmploymentTypes, ", "),
			yesNo(a.HasResume), a.Certifications, a.PaymentAmount.String(), string(a.PaymentStatus),
			a.PaymentID, string(a.Status), a.ClickSource, formatKST(a.CreatedAt),
		})
	}
	return rows
}
