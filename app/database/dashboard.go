package database

import (
	"database/sql"
	"fmt"
)

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalStudents    int      `json:"totalStudents"`
	TotalUsers       int      `json:"totalUsers"`
	TotalPayments    int      `json:"totalPayments"`
	TotalTeachers    int      `json:"totalTeachers"`
	RecentActivities []string `json:"recentActivities"`
}

func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM student WHERE student_status = true`).Scan(&stats.TotalStudents); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE user_is_deleted = false`).Scan(&stats.TotalUsers); err != nil {
		return nil, err
	}
	if err := db.QueryRow(`SELECT COUNT(*) FROM payment`).Scan(&stats.TotalPayments); err != nil {
		return nil, err
	}

	teachers, err := CountActiveTeachers(db)
	if err != nil {
		return nil, err
	}
	stats.TotalTeachers = teachers

	activities, err := recentPaymentActivities(db)
	if err != nil {
		return nil, err
	}
	stats.RecentActivities = activities
	return stats, nil
}

// recentPaymentActivities renders the latest monthly payments as display
// lines for the dashboard feed.
func recentPaymentActivities(db *sql.DB) ([]string, error) {
	query := `SELECT COALESCE(s.student_full_name, 'Siswa'), COALESCE(po.pos_name, 'Pembayaran')
			  FROM bulan b
			  LEFT JOIN student s ON s.student_id = b.student_student_id
			  LEFT JOIN payment p ON p.payment_id = b.payment_payment_id
			  LEFT JOIN pos po ON po.pos_id = p.pos_pos_id
			  ORDER BY b.bulan_input_date DESC NULLS LAST
			  LIMIT 10`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []string
	for rows.Next() {
		var studentName, posName string
		if err := rows.Scan(&studentName, &posName); err != nil {
			return nil, err
		}
		activities = append(activities, fmt.Sprintf("Pembayaran %s - %s", studentName, posName))
	}
	return activities, rows.Err()
}
