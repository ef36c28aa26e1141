package domain

var (
	LEARNING_SESSION_START_SUCCESS  = "Berhasil memulai sesi belajar"
	LEARNING_SESSION_START_FAILED   = "Gagal memulai sesi belajar"
	LEARNING_GAME_GENERATE_SUCCESS  = "Berhasil generate learning game"
	LEARNING_GAME_GENERATE_FAILED   = "Gagal generate learning game"
	LEARNING_SUBMIT_ANSWER_SUCCESS  = "Berhasil submit jawaban"
	LEARNING_SUBMIT_ANSWER_FAILED   = "Gagal submit jawaban"
	LEARNING_STUDENT_VIEW_SUCCESS   = "Berhasil mendapatkan analitik student"
	LEARNING_STUDENT_VIEW_FAILED    = "Gagal mendapatkan analitik student"
	LEARNING_TEACHER_VIEW_SUCCESS   = "Berhasil mendapatkan analitik teacher"
	LEARNING_TEACHER_VIEW_FAILED    = "Gagal mendapatkan analitik teacher"
	LEARNING_ADMIN_VIEW_SUCCESS     = "Berhasil mendapatkan analitik admin"
	LEARNING_ADMIN_VIEW_FAILED      = "Gagal mendapatkan analitik admin"
	LEARNING_FEEDBACK_SUCCESS       = "Berhasil generate feedback"
	LEARNING_FEEDBACK_FAILED        = "Gagal generate feedback"
	LEARNING_EXPORT_CSV_FAILED      = "Gagal export CSV"
	LEARNING_ADMIN_REPORT_SUCCESS   = "Berhasil generate report"
	LEARNING_ADMIN_REPORT_FAILED    = "Gagal generate report"
	LEARNING_MENTOR_CHAT_SUCCESS    = "Berhasil mengirim pesan ke mentor"
	LEARNING_MENTOR_CHAT_FAILED     = "Gagal mengirim pesan ke mentor"
	LEARNING_MENTOR_HISTORY_SUCCESS = "Berhasil mendapatkan riwayat chat"
	LEARNING_MENTOR_HISTORY_FAILED  = "Gagal mendapatkan riwayat chat"
)
