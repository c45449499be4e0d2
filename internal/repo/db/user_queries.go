package db

const userGetByPhoneQ = `
SELECT
	u.id,
	u.name,
	u.phone,
	u.created_at,
	u.updated_at
FROM users u
WHERE u.phone = $1
`
