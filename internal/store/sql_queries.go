package store

const (
	userColumns = `id, badge_number, email, school_email, password_hash, status,
    first_name, last_name, dob, gender, pronouns, race, ethnicity,
    address, city, state, zip_code, phone_number, phone_carrier,
    is_student, type_of_student, school, degree, anticipated_graduation, major, minor, classification,
    is_healthcare_provider, type_of_provider, employer,
    is_multilingual, is_admin, created_at`

	createUser = `INSERT INTO users (badge_number, email, school_email, password_hash, status,
    first_name, last_name, dob, gender, pronouns, race, ethnicity,
    address, city, state, zip_code, phone_number, phone_carrier,
    is_student, type_of_student, school, degree, anticipated_graduation, major, minor, classification,
    is_healthcare_provider, type_of_provider, employer,
    is_multilingual, is_admin)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
            $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	getUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	experienceColumns = `id, date, sign_in_time, sign_out_time, department, user_id`

	createExperience = `INSERT INTO experiences (date, sign_in_time, sign_out_time, department, user_id)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING ` + experienceColumns + `;`

	getExperienceByID = `SELECT ` + experienceColumns + `
    FROM experiences
    WHERE id = $1;`

	updateExperience = `UPDATE experiences
    SET sign_out_time = $1, department = COALESCE($2, department)
    WHERE id = $3
    RETURNING ` + experienceColumns + `;`

	listLanguagesByUser = `SELECT id, language, fluency, user_id
    FROM languages
    WHERE user_id = $1
    ORDER BY id;`
)
