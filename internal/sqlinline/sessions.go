package sqlinline

const QInsertSession = `--sql 336a1646-a5a5-455b-bcbc-763a73c89bc7
insert into sessions(id, user_id, token_hash, expires_at, created_at)
values ($1::uuid, $2::uuid, $3::text, $4::timestamptz, now())
returning id;
`

const QRevokeSessionByTokenHash = `--sql 565bb399-f1ad-4de6-bb61-c57af50f2b38
update sessions
set revoked_at = now()
where token_hash = $1::text
  and revoked_at is null;
`
