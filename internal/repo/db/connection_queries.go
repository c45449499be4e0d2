package db

const connGetLatestByDeviceQ = `
SELECT
	c.id,
	c.device_id,
	c.status,
	c.created_at
FROM connections c
WHERE c.device_id = $1
ORDER BY c.created_at DESC
LIMIT 1
`

const connCreateQ = `
INSERT INTO connections (device_id, status)
VALUES ($1, $2)
RETURNING id, device_id, status, created_at
`

const connUpdateStatusQ = `
UPDATE connections
SET status = $1
WHERE device_id = $2
`
