package sqlinline

const profileColumns = `id, name, email, country, currency_preference, is_monthly_sponsor, total_donated, stripe_customer_id, role, created_at`

const QSelectProfileByID = `--sql 43acaba9-a594-42cd-94ef-48e7346dbea4
select ` + profileColumns + `
from profiles
where id = $1::uuid;
`

const QSelectProfileByEmail = `--sql ad97d83e-80ec-4025-be7b-64d82f45f924
select ` + profileColumns + `
from profiles
where lower(email) = lower($1::text);
`

const QUpdateProfileRole = `--sql ed124a19-d393-4d00-b342-a37531a8ac5b
update profiles
set role = $2::text
where id = $1::uuid
returning ` + profileColumns + `;
`

const QInsertProfile = `--sql 894a6c41-12af-4818-add3-a527ec2a8e46
insert into profiles(id, name, email, country, currency_preference, is_monthly_sponsor, total_donated,
                     stripe_customer_id, role, password_hash, email_confirmed_at, created_at)
values (gen_random_uuid(), $1::text, lower($2::text), $3::text, $4::text, false, 0,
        null, 'donor', $5::text, case when $6::bool then now() else null end, now())
on conflict (email) do nothing
returning id;
`

const QSelectCredentialsByEmail = `--sql ce7a538b-f859-4219-8c11-66c40bae06a7
select id, password_hash, email_confirmed_at is not null
from profiles
where lower(email) = lower($1::text);
`
