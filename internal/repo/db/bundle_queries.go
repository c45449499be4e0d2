package db

const bundleGetLatestByDeviceCodeQ = `
SELECT
	b.id,
	b.device_id,
	b.expires_at,
	b.remaining_days,
	b.created_at
FROM bundles b
JOIN devices d ON d.id = b.device_id
WHERE d.code = $1
ORDER BY b.created_at DESC
LIMIT 1
`

const bundleGetLatestByDeviceQ = `
SELECT
	b.id,
	b.device_id,
	b.expires_at,
	b.remaining_days,
	b.created_at
FROM bundles b
WHERE b.device_id = $1
ORDER BY b.created_at DESC
LIMIT 1
`

const bundleCreateQ = `
INSERT INTO bundles (device_id, expires_at, remaining_days)
VALUES ($1, $2, $3)
RETURNING id, device_id, expires_at, remaining_days, created_at
`

const bundleRenewQ = `
UPDATE bundles
SET expires_at = $1,
    remaining_days = $2
WHERE id = $3
`
