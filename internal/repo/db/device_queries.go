package db

const deviceGetByCodeQ = `
SELECT
	d.id,
	d.code,
	d.phone_number,
	d.expires_at,
	d.created_at
FROM devices d
WHERE d.code = $1
ORDER BY d.created_at DESC
LIMIT 1
`

const deviceGetLiveByCodeQ = `
SELECT
	d.id,
	d.code,
	d.phone_number,
	d.expires_at,
	d.created_at
FROM devices d
WHERE d.code = $1 AND d.expires_at > NOW()
ORDER BY d.created_at DESC
LIMIT 1
`

const deviceCreateQ = `
INSERT INTO devices (code, phone_number, expires_at)
VALUES ($1, $2, $3)
RETURNING id, code, phone_number, expires_at, created_at
`

const deviceSetPhoneQ = `
UPDATE devices
SET phone_number = $1
WHERE id = $2
`

const deviceDeleteExpiredQ = `
DELETE FROM devices
WHERE expires_at < NOW()
`
